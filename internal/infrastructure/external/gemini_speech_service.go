package external

import (
	"context"
	"fmt"
	"log/slog"

	genai_std "google.golang.org/genai"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/valueobjects"
)

// The TTS model returns raw little-endian 16-bit PCM at this rate.
const (
	speechSampleRate = 24000
	speechChannels   = 1
)

type GeminiSpeechService struct {
	genAIClient *genai_std.Client
	model       string
}

func NewGeminiSpeechService(genAIClient *genai_std.Client, model string) repositories.SpeechService {
	return &GeminiSpeechService{
		genAIClient: genAIClient,
		model:       model,
	}
}

func (s *GeminiSpeechService) Synthesize(ctx context.Context, text string, voice entities.VoiceOption) (*valueobjects.AudioData, error) {
	slog.Info("Synthesize", "model", s.model, "voice", voice, "textLength", len(text))

	config := &genai_std.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai_std.SpeechConfig{
			VoiceConfig: &genai_std.VoiceConfig{
				PrebuiltVoiceConfig: &genai_std.PrebuiltVoiceConfig{
					VoiceName: string(voice),
				},
			},
		},
	}

	resp, err := s.genAIClient.Models.GenerateContent(ctx,
		s.model,
		genai_std.Text(text),
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	pcm := firstInlineData(resp)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio data in speech response")
	}

	audio, err := valueobjects.NewAudioData(pcm, speechSampleRate, speechChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to build audio data: %w", err)
	}

	slog.Info("Synthesize done", "pcmBytes", len(pcm), "duration", audio.Duration())
	return audio, nil
}

// firstInlineData scans all candidate parts for the first inline payload.
func firstInlineData(resp *genai_std.GenerateContentResponse) []byte {
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
