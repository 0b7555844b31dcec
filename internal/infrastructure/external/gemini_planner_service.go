package external

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	genai_std "google.golang.org/genai"

	"promoreel/internal/domain/repositories"
)

type GeminiPlannerService struct {
	genAIClient *genai_std.Client
	model       string
}

func NewGeminiPlannerService(genAIClient *genai_std.Client, model string) repositories.PlannerService {
	return &GeminiPlannerService{
		genAIClient: genAIClient,
		model:       model,
	}
}

// visualPlanSchema constrains the structured response to an array of scene
// descriptors with mandatory type and description.
var visualPlanSchema = &genai_std.Schema{
	Type: genai_std.TypeArray,
	Items: &genai_std.Schema{
		Type: genai_std.TypeObject,
		Properties: map[string]*genai_std.Schema{
			"type": {
				Type: genai_std.TypeString,
				Enum: []string{"IMAGE", "VIDEO"},
			},
			"description": {
				Type:        genai_std.TypeString,
				Description: "What the viewer sees during this part of the script",
			},
			"imagePrompt": {
				Type:        genai_std.TypeString,
				Description: "Text-to-image prompt, required when type is IMAGE",
			},
			"videoStartTime": {
				Type:        genai_std.TypeNumber,
				Description: "Clip start in seconds, only when type is VIDEO",
			},
			"videoEndTime": {
				Type:        genai_std.TypeNumber,
				Description: "Clip end in seconds, only when type is VIDEO",
			},
		},
		Required: []string{"type", "description"},
	},
}

func (s *GeminiPlannerService) PlanScenes(ctx context.Context, request repositories.PlanRequest) (string, error) {
	parts := make([]*genai_std.Part, 0, len(request.Frames)*2+1)

	// Sampled demo frames go ahead of the text prompt, each paired with a
	// timestamp label so the model can anchor VIDEO scenes.
	for _, frame := range request.Frames {
		data, err := base64.StdEncoding.DecodeString(frame.Base64)
		if err != nil {
			slog.Warn("PlanScenes: skipping undecodable frame", "timestamp", frame.Timestamp, "error", err)
			continue
		}
		parts = append(parts,
			&genai_std.Part{
				InlineData: &genai_std.Blob{
					MIMEType: "image/jpeg",
					Data:     data,
				},
			},
			genai_std.NewPartFromText(fmt.Sprintf("Frame at %.1fs of the demo video.", frame.Timestamp)),
		)
	}

	parts = append(parts, genai_std.NewPartFromText(buildPlanPrompt(request)))

	contents := []*genai_std.Content{
		genai_std.NewContentFromParts(parts, genai_std.RoleUser),
	}

	config := &genai_std.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   visualPlanSchema,
	}

	slog.Info("PlanScenes", "model", s.model, "frameCount", len(request.Frames))

	resp, err := s.genAIClient.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to plan scenes: %w", err)
	}

	return resp.Text(), nil
}

func buildPlanPrompt(request repositories.PlanRequest) string {
	var sb strings.Builder

	sb.WriteString("Break the following promotional voiceover script into exactly 4 to 6 visual scenes.\n")
	sb.WriteString("For each scene decide between type IMAGE and type VIDEO.\n")
	sb.WriteString("Use VIDEO only when the demo frames above visibly match that part of the script; ")
	sb.WriteString("then pick videoStartTime and videoEndTime within the timestamps of those frames.\n")
	sb.WriteString("For IMAGE scenes write a vivid imagePrompt for a text-to-image model.\n")

	sb.WriteString("\nVoiceover script:\n")
	sb.WriteString(request.Script)

	if request.CodeContext != "" {
		sb.WriteString("\n\nProject code context:\n")
		sb.WriteString(request.CodeContext)
	}

	return sb.String()
}
