package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/services"
)

func assetPolicy() services.RetryPolicy {
	return services.RetryPolicy{
		MaxAttempts: 3,
		Backoff:     services.ExponentialBackoff(2*time.Second, 1.5),
		Sleep: func(ctx context.Context, d time.Duration) error {
			return nil
		},
	}
}

func TestAssetUseCase_Generate(t *testing.T) {
	t.Run("video item with no timestamps defaults to 0..5", func(t *testing.T) {
		community := &mockCommunityService{}
		fallback := &mockFallbackService{}
		uc := NewAssetUseCaseWithRetry(community, fallback, assetPolicy(), repositories.NopSink{})

		asset, err := uc.Generate(context.Background(), entities.VisualPlanItem{
			Type:        entities.SceneVideo,
			Description: "Demo walkthrough",
		}, entities.PlatformTikTok)

		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !asset.IsVideo() {
			t.Fatal("expected video asset")
		}
		if asset.VideoStart() != 0 || asset.VideoEnd() != 5 {
			t.Errorf("clip = %v..%v, want 0..5", asset.VideoStart(), asset.VideoEnd())
		}
		if community.calls != 0 || fallback.calls != 0 {
			t.Error("video items must not trigger image generation")
		}
	})

	t.Run("inverted video timestamps are repaired", func(t *testing.T) {
		uc := NewAssetUseCaseWithRetry(&mockCommunityService{}, &mockFallbackService{}, assetPolicy(), repositories.NopSink{})

		start, end := 10.0, 3.0
		asset, _ := uc.Generate(context.Background(), entities.VisualPlanItem{
			Type:           entities.SceneVideo,
			Description:    "Demo",
			VideoStartTime: &start,
			VideoEndTime:   &end,
		}, entities.PlatformYouTube)

		if asset.VideoStart() != 10 || asset.VideoEnd() != 15 {
			t.Errorf("clip = %v..%v, want 10..15", asset.VideoStart(), asset.VideoEnd())
		}
	})

	t.Run("primary provider success on portrait platform", func(t *testing.T) {
		community := &mockCommunityService{image: createTestImageData(t)}
		fallback := &mockFallbackService{}
		uc := NewAssetUseCaseWithRetry(community, fallback, assetPolicy(), repositories.NopSink{})

		asset, err := uc.Generate(context.Background(), entities.VisualPlanItem{
			Type:        entities.SceneImage,
			Description: "Intro",
			ImagePrompt: "a glowing terminal",
		}, entities.PlatformTikTok)

		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !asset.IsImage() {
			t.Fatal("expected image asset")
		}
		if community.calls != 1 {
			t.Errorf("expected 1 primary call, got %d", community.calls)
		}
		if fallback.calls != 0 {
			t.Error("fallback should not run when the primary succeeds")
		}
		if community.lastRequest.Width != 768 || community.lastRequest.Height != 1024 {
			t.Errorf("portrait resolution = %dx%d, want 768x1024",
				community.lastRequest.Width, community.lastRequest.Height)
		}
		if !strings.HasPrefix(community.lastRequest.Prompt, "a glowing terminal") {
			t.Errorf("prompt should start with the plan prompt, got %q", community.lastRequest.Prompt)
		}
		if community.lastRequest.Prompt == "a glowing terminal" {
			t.Error("prompt should carry the quality suffix")
		}
		if asset.Prompt() != "a glowing terminal" {
			t.Errorf("asset prompt = %q, want the unaugmented prompt", asset.Prompt())
		}
	})

	t.Run("primary exhaustion falls back with platform aspect ratio", func(t *testing.T) {
		community := &mockCommunityService{err: errors.New("space unavailable")}
		fallback := &mockFallbackService{image: createTestImageData(t)}
		uc := NewAssetUseCaseWithRetry(community, fallback, assetPolicy(), repositories.NopSink{})

		asset, err := uc.Generate(context.Background(), entities.VisualPlanItem{
			Type:        entities.SceneImage,
			Description: "Outro",
		}, entities.PlatformYouTube)

		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if asset == nil || !asset.IsImage() {
			t.Fatal("expected image asset from the fallback tier")
		}
		if community.calls != 3 {
			t.Errorf("expected 3 primary attempts, got %d", community.calls)
		}
		if fallback.calls != 1 {
			t.Errorf("expected 1 fallback attempt, got %d", fallback.calls)
		}
		if fallback.lastAspect != "16:9" {
			t.Errorf("fallback aspect = %q, want 16:9", fallback.lastAspect)
		}
		// Description stands in when the planner left imagePrompt out.
		if fallback.lastPrompt != "Outro" {
			t.Errorf("fallback prompt = %q, want the description", fallback.lastPrompt)
		}
	})

	t.Run("empty primary result burns attempts like an error", func(t *testing.T) {
		community := &mockCommunityService{} // nil image, nil error
		fallback := &mockFallbackService{err: errors.New("blocked")}
		uc := NewAssetUseCaseWithRetry(community, fallback, assetPolicy(), repositories.NopSink{})

		asset, err := uc.Generate(context.Background(), entities.VisualPlanItem{
			Type:        entities.SceneImage,
			Description: "Feature",
		}, entities.PlatformInstagram)

		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if asset != nil {
			t.Error("expected nil asset after total exhaustion")
		}
		if community.calls != 3 {
			t.Errorf("expected 3 primary attempts, got %d", community.calls)
		}
	})

	t.Run("total exhaustion resolves to nil, not an error", func(t *testing.T) {
		community := &mockCommunityService{err: errors.New("down")}
		fallback := &mockFallbackService{err: errors.New("also down")}
		uc := NewAssetUseCaseWithRetry(community, fallback, assetPolicy(), repositories.NopSink{})

		asset, err := uc.Generate(context.Background(), entities.VisualPlanItem{
			Type:        entities.SceneImage,
			Description: "Benefit",
		}, entities.PlatformTikTok)

		if err != nil {
			t.Errorf("total exhaustion must not error, got %v", err)
		}
		if asset != nil {
			t.Error("expected nil asset")
		}
		if fallback.lastAspect != "9:16" {
			t.Errorf("fallback aspect = %q, want 9:16", fallback.lastAspect)
		}
	})
}
