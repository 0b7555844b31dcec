package usecases

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/services"
	"promoreel/internal/domain/valueobjects"
)

const (
	// promptStyleSuffix is appended to every image prompt before generation.
	promptStyleSuffix = ", high quality, professional, vibrant colors, sharp focus, cinematic lighting"

	// imageSteps keeps inference cheap on the free-tier community host.
	imageSteps = 4

	assetMaxAttempts   = 3
	assetBackoffBase   = 2 * time.Second
	assetBackoffFactor = 1.5

	defaultClipLength = 5.0
)

type AssetUseCase struct {
	community repositories.CommunityImageService
	fallback  repositories.FallbackImageService
	retry     services.RetryPolicy
	seed      func() int64
	sink      repositories.ProgressSink
}

func NewAssetUseCase(community repositories.CommunityImageService, fallback repositories.FallbackImageService, sink repositories.ProgressSink) *AssetUseCase {
	return NewAssetUseCaseWithRetry(
		community,
		fallback,
		services.NewRetryPolicy(assetMaxAttempts, services.ExponentialBackoff(assetBackoffBase, assetBackoffFactor)),
		sink,
	)
}

func NewAssetUseCaseWithRetry(community repositories.CommunityImageService, fallback repositories.FallbackImageService, retry services.RetryPolicy, sink repositories.ProgressSink) *AssetUseCase {
	return &AssetUseCase{
		community: community,
		fallback:  fallback,
		retry:     retry,
		seed:      rand.Int63,
		sink:      sink,
	}
}

// Generate produces the visual asset for one plan item. VIDEO items are a
// pass-through referencing clip boundaries; IMAGE items run the two-tier
// provider strategy. When every strategy is exhausted the asset is nil and
// the run continues - a missing scene, not a pipeline abort.
func (uc *AssetUseCase) Generate(ctx context.Context, item entities.VisualPlanItem, platform entities.Platform) (*entities.VisualAsset, error) {
	if item.Type == entities.SceneVideo {
		return uc.videoAsset(item), nil
	}

	prompt := item.PromptOrDescription()

	if asset := uc.communityImage(ctx, prompt, item, platform); asset != nil {
		return asset, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.sink.Emit(repositories.LevelWarning, "Primary image provider exhausted, trying fallback model")

	if asset := uc.fallbackImage(ctx, prompt, item, platform); asset != nil {
		return asset, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.sink.Emit(repositories.LevelError, fmt.Sprintf("All image providers failed for scene %q", item.Description))
	return nil, nil
}

// videoAsset defers actual clip extraction to an external collaborator and
// only carries the boundaries. Missing or inverted timestamps are repaired
// rather than rejected.
func (uc *AssetUseCase) videoAsset(item entities.VisualPlanItem) *entities.VisualAsset {
	start := 0.0
	if item.VideoStartTime != nil && *item.VideoStartTime > 0 {
		start = *item.VideoStartTime
	}

	end := start + defaultClipLength
	if item.VideoEndTime != nil && *item.VideoEndTime > start {
		end = *item.VideoEndTime
	}

	return entities.NewVideoAsset(start, end, item.Description, "")
}

func (uc *AssetUseCase) communityImage(ctx context.Context, prompt string, item entities.VisualPlanItem, platform entities.Platform) *entities.VisualAsset {
	width, height := platform.ImageSize()

	var image *valueobjects.ImageData
	attempt := 0
	err := uc.retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		result, err := uc.community.GenerateImage(ctx, repositories.ImageRequest{
			Prompt: prompt + promptStyleSuffix,
			Width:  width,
			Height: height,
			Steps:  imageSteps,
			Seed:   uc.seed(),
		})
		if err != nil {
			uc.sink.Emit(repositories.LevelWarning, fmt.Sprintf("Image generation attempt %d failed: %v", attempt, err))
			return err
		}
		if result == nil {
			// An empty result burns an attempt exactly like an error does.
			uc.sink.Emit(repositories.LevelWarning, fmt.Sprintf("Image generation attempt %d returned no image", attempt))
			return fmt.Errorf("provider returned no image")
		}
		image = result
		return nil
	})
	if err != nil {
		return nil
	}

	return entities.NewImageAsset(image, prompt, item.Description)
}

func (uc *AssetUseCase) fallbackImage(ctx context.Context, prompt string, item entities.VisualPlanItem, platform entities.Platform) *entities.VisualAsset {
	image, err := uc.fallback.GenerateImage(ctx, prompt, platform.AspectRatio())
	if err != nil {
		uc.sink.Emit(repositories.LevelWarning, fmt.Sprintf("Fallback image generation failed: %v", err))
		return nil
	}
	if image == nil {
		return nil
	}

	return entities.NewImageAsset(image, prompt, item.Description)
}
