package usecases

import (
	"context"
	"fmt"
	"time"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/services"
	"promoreel/internal/domain/valueobjects"
)

const (
	voiceMaxAttempts = 3
	voiceBackoffBase = 2 * time.Second
)

type VoiceUseCase struct {
	speechService repositories.SpeechService
	retry         services.RetryPolicy
	sink          repositories.ProgressSink
}

func NewVoiceUseCase(speechService repositories.SpeechService, sink repositories.ProgressSink) *VoiceUseCase {
	// The speech model rate-limits aggressively; the delay after the third
	// failure (2s, 4s, 6s) spaces out whatever the caller tries next.
	retry := services.NewRetryPolicy(voiceMaxAttempts, services.LinearBackoff(voiceBackoffBase))
	retry.DelayAfterLast = true
	return NewVoiceUseCaseWithRetry(speechService, retry, sink)
}

func NewVoiceUseCaseWithRetry(speechService repositories.SpeechService, retry services.RetryPolicy, sink repositories.ProgressSink) *VoiceUseCase {
	return &VoiceUseCase{
		speechService: speechService,
		retry:         retry,
		sink:          sink,
	}
}

// Synthesize cleans the script down to spoken words and converts it to
// speech audio. An empty cleaned script fails immediately without touching
// the network; transient provider failures are retried with linear backoff.
func (uc *VoiceUseCase) Synthesize(ctx context.Context, script string, voice entities.VoiceOption) (*valueobjects.AudioData, error) {
	cleaned := services.CleanSpeechText(script)
	if cleaned == "" {
		return nil, fmt.Errorf("script is empty after cleanup, nothing to synthesize")
	}

	uc.sink.Emit(repositories.LevelInfo, fmt.Sprintf("Synthesizing narration with voice %s...", voice))

	var audio *valueobjects.AudioData
	attempt := 0
	err := uc.retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		result, err := uc.speechService.Synthesize(ctx, cleaned, voice)
		if err != nil {
			uc.sink.Emit(repositories.LevelWarning, fmt.Sprintf("Voice synthesis attempt %d failed: %v", attempt, err))
			return err
		}
		audio = result
		return nil
	})
	if err != nil {
		uc.sink.Emit(repositories.LevelError, fmt.Sprintf("Voice synthesis gave up: %v", err))
		return nil, fmt.Errorf("voice synthesis %w", err)
	}

	uc.sink.Emit(repositories.LevelSuccess, fmt.Sprintf("Narration ready (%.1fs)", audio.Duration()))
	return audio, nil
}
