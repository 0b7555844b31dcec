package repositories

import (
	"context"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/valueobjects"
)

// 台本生成サービス
type ScriptService interface {
	// GenerateScript sends a single-shot prompt built from the file context
	// and platform instructions and returns the spoken-word script.
	GenerateScript(ctx context.Context, fileContext string, platform entities.Platform, referenceURL string) (string, error)
}

// 音声合成サービス
type SpeechService interface {
	// Synthesize converts cleaned script text to raw 24kHz mono PCM.
	Synthesize(ctx context.Context, text string, voice entities.VoiceOption) (*valueobjects.AudioData, error)
}

// PlanRequest carries everything the planner model sees: the finished
// script, condensed code context and the sampled demo-video frames.
type PlanRequest struct {
	Script      string
	CodeContext string
	Frames      []entities.VideoFrame
}

// シーン計画サービス
type PlannerService interface {
	// PlanScenes makes a single structured-output request and returns the
	// raw response text. Cleaning and parsing happen in the use case.
	PlanScenes(ctx context.Context, request PlanRequest) (string, error)
}

// ImageRequest is a community-provider image generation request.
type ImageRequest struct {
	Prompt string
	Width  int
	Height int
	Steps  int
	Seed   int64
}

// コミュニティ画像生成サービス（一次プロバイダ）
type CommunityImageService interface {
	GenerateImage(ctx context.Context, request ImageRequest) (*valueobjects.ImageData, error)
}

// フォールバック画像生成サービス（二次プロバイダ）
type FallbackImageService interface {
	GenerateImage(ctx context.Context, prompt, aspectRatio string) (*valueobjects.ImageData, error)
}
