package repositories

import (
	"context"

	genai_std "google.golang.org/genai"
)

// GenAI Client Pool Service
// 全Geminiサービスで共有する標準GenAIクライアントプール
type GenAIClientPool interface {
	// 標準GenAI用クライアントを取得
	GetGenAIClient(ctx context.Context, geminiApiKey string) (*genai_std.Client, error)

	// リソースのクリーンアップ
	Close() error
}
