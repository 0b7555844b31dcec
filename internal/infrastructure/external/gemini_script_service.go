package external

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	genai_std "google.golang.org/genai"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
)

type GeminiScriptService struct {
	genAIClient *genai_std.Client
	model       string
}

func NewGeminiScriptService(genAIClient *genai_std.Client, model string) repositories.ScriptService {
	return &GeminiScriptService{
		genAIClient: genAIClient,
		model:       model,
	}
}

func (s *GeminiScriptService) GenerateScript(ctx context.Context, fileContext string, platform entities.Platform, referenceURL string) (string, error) {
	prompt := buildScriptPrompt(fileContext, platform, referenceURL)

	slog.Info("GenerateScript", "model", s.model, "platform", platform, "promptLength", len(prompt))

	resp, err := s.genAIClient.Models.GenerateContent(ctx,
		s.model,
		genai_std.Text(prompt),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate script: %w", err)
	}

	return resp.Text(), nil
}

func buildScriptPrompt(fileContext string, platform entities.Platform, referenceURL string) string {
	var sb strings.Builder

	sb.WriteString("You are writing the voiceover script for a short promotional video about a software project.\n\n")
	sb.WriteString(platform.ToneInstructions())
	sb.WriteString("\n\n")

	sb.WriteString("Strictly adhere to the following output constraints:\n")
	sb.WriteString("1. Target a spoken duration of 30 to 45 seconds.\n")
	sb.WriteString("2. The last sentence must flow seamlessly back into the first so the video loops.\n")
	sb.WriteString("3. Output spoken words only: no speaker labels, no scene directions, no bracketed cues, no markdown.\n")

	if referenceURL != "" {
		sb.WriteString("\nThe project lives at: " + referenceURL + "\n")
	}

	sb.WriteString("\nProject source files:\n")
	sb.WriteString(fileContext)

	return sb.String()
}
