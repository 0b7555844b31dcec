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
	"promoreel/internal/domain/valueobjects"
)

func testAudio(t *testing.T) *valueobjects.AudioData {
	t.Helper()
	audio, err := valueobjects.NewAudioData(make([]byte, 4800), 24000, 1)
	if err != nil {
		t.Fatalf("Failed to create test audio: %v", err)
	}
	return audio
}

func voicePolicy(slept *[]time.Duration) services.RetryPolicy {
	return services.RetryPolicy{
		MaxAttempts:    3,
		Backoff:        services.LinearBackoff(2 * time.Second),
		DelayAfterLast: true,
		Sleep: func(ctx context.Context, d time.Duration) error {
			*slept = append(*slept, d)
			return nil
		},
	}
}

func TestVoiceUseCase_Synthesize(t *testing.T) {
	t.Run("empty cleaned script makes no network call", func(t *testing.T) {
		mock := &mockSpeechService{audio: testAudio(t)}
		var slept []time.Duration
		uc := NewVoiceUseCaseWithRetry(mock, voicePolicy(&slept), repositories.NopSink{})

		_, err := uc.Synthesize(context.Background(), " [intro music] (pause) ** ", entities.VoiceKore)

		if err == nil {
			t.Fatal("expected empty-script error")
		}
		if !strings.Contains(err.Error(), "empty") {
			t.Errorf("error %q should identify the empty input", err)
		}
		if mock.calls != 0 {
			t.Errorf("expected no synthesis calls, got %d", mock.calls)
		}
	})

	t.Run("successful synthesis", func(t *testing.T) {
		mock := &mockSpeechService{audio: testAudio(t)}
		var slept []time.Duration
		uc := NewVoiceUseCaseWithRetry(mock, voicePolicy(&slept), repositories.NopSink{})

		audio, err := uc.Synthesize(context.Background(), "Hello *world*", entities.VoicePuck)

		if err != nil {
			t.Fatalf("Synthesize() error = %v", err)
		}
		if audio == nil {
			t.Fatal("expected audio")
		}
		if audio.SampleRate() != 24000 || audio.Channels() != 1 {
			t.Errorf("audio should be 24kHz mono, got %d/%d", audio.SampleRate(), audio.Channels())
		}
		if mock.calls != 1 {
			t.Errorf("expected 1 call, got %d", mock.calls)
		}
	})

	t.Run("default policy delays after the final attempt", func(t *testing.T) {
		uc := NewVoiceUseCase(&mockSpeechService{}, repositories.NopSink{})

		if !uc.retry.DelayAfterLast {
			t.Error("voice retry policy should back off after the last failure too")
		}
		if uc.retry.MaxAttempts != 3 {
			t.Errorf("MaxAttempts = %d, want 3", uc.retry.MaxAttempts)
		}
	})

	t.Run("three attempts with growing delays", func(t *testing.T) {
		mock := &mockSpeechService{err: errors.New("no audio payload")}
		var slept []time.Duration
		uc := NewVoiceUseCaseWithRetry(mock, voicePolicy(&slept), repositories.NopSink{})

		_, err := uc.Synthesize(context.Background(), "Hello world", entities.VoiceKore)

		if err == nil {
			t.Fatal("expected error after exhaustion")
		}
		if mock.calls != 3 {
			t.Errorf("expected exactly 3 attempts, got %d", mock.calls)
		}
		if !strings.Contains(err.Error(), "3 attempts") {
			t.Errorf("error %q should mention 3 attempts", err)
		}
		if !strings.Contains(err.Error(), "no audio payload") {
			t.Errorf("error %q should carry the last underlying error", err)
		}
		// Linear 2s backoff after every failed attempt, the third included.
		want := []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}
		if len(slept) != len(want) {
			t.Fatalf("expected sleeps %v, got %v", want, slept)
		}
		for i := range want {
			if slept[i] != want[i] {
				t.Errorf("sleep %d = %v, want %v", i, slept[i], want[i])
			}
		}
	})
}
