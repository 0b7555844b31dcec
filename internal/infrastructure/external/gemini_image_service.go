package external

import (
	"context"
	"fmt"
	"log/slog"

	genai_std "google.golang.org/genai"

	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/valueobjects"
)

// GeminiImageService is the second-tier image provider: the same language
// model family used for script generation, in image-output mode.
type GeminiImageService struct {
	genAIClient *genai_std.Client
	model       string
}

func NewGeminiImageService(genAIClient *genai_std.Client, model string) repositories.FallbackImageService {
	return &GeminiImageService{
		genAIClient: genAIClient,
		model:       model,
	}
}

func (s *GeminiImageService) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*valueobjects.ImageData, error) {
	slog.Info("GenerateImage (fallback)", "model", s.model, "aspectRatio", aspectRatio)

	fullPrompt := fmt.Sprintf("Generate a single %s image, no text overlay: %s", aspectRatio, prompt)

	resp, err := s.genAIClient.Models.GenerateContent(ctx,
		s.model,
		genai_std.Text(fullPrompt),
		&genai_std.GenerateContentConfig{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	// Image-output models interleave text and inline image parts; the first
	// inline image wins.
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			image, err := valueobjects.NewImageData(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to create image data: %w", err)
			}
			slog.Info("GenerateImage (fallback) done", "mimeType", part.InlineData.MIMEType, "dataSize", len(part.InlineData.Data))
			return image, nil
		}
	}

	return nil, fmt.Errorf("no image data in response")
}
