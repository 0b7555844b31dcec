package usecases

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/services"
	"promoreel/internal/domain/valueobjects"
)

// noDelayPolicy retries immediately so tests never wait out backoff.
func noDelayPolicy(maxAttempts int) services.RetryPolicy {
	return services.RetryPolicy{
		MaxAttempts: maxAttempts,
		Sleep: func(ctx context.Context, d time.Duration) error {
			return nil
		},
	}
}

type mockScriptService struct {
	script       string
	err          error
	calls        int
	lastContext  string
	lastPlatform entities.Platform
	lastRef      string
}

func (m *mockScriptService) GenerateScript(ctx context.Context, fileContext string, platform entities.Platform, referenceURL string) (string, error) {
	m.calls++
	m.lastContext = fileContext
	m.lastPlatform = platform
	m.lastRef = referenceURL
	return m.script, m.err
}

type mockSpeechService struct {
	audio *valueobjects.AudioData
	err   error
	calls int
}

func (m *mockSpeechService) Synthesize(ctx context.Context, text string, voice entities.VoiceOption) (*valueobjects.AudioData, error) {
	m.calls++
	return m.audio, m.err
}

type mockPlannerService struct {
	response    string
	err         error
	calls       int
	lastRequest repositories.PlanRequest
}

func (m *mockPlannerService) PlanScenes(ctx context.Context, request repositories.PlanRequest) (string, error) {
	m.calls++
	m.lastRequest = request
	return m.response, m.err
}

type mockCommunityService struct {
	image       *valueobjects.ImageData
	err         error
	calls       int
	lastRequest repositories.ImageRequest
}

func (m *mockCommunityService) GenerateImage(ctx context.Context, request repositories.ImageRequest) (*valueobjects.ImageData, error) {
	m.calls++
	m.lastRequest = request
	return m.image, m.err
}

type mockFallbackService struct {
	image      *valueobjects.ImageData
	err        error
	calls      int
	lastPrompt string
	lastAspect string
}

func (m *mockFallbackService) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*valueobjects.ImageData, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastAspect = aspectRatio
	return m.image, m.err
}

func createTestImageData(t *testing.T) *valueobjects.ImageData {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	imageData, err := valueobjects.NewImageData(buf.Bytes())
	if err != nil {
		t.Fatalf("Failed to create test image data: %v", err)
	}
	return imageData
}
