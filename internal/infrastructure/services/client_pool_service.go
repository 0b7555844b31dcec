package services

import (
	"context"
	"fmt"
	"sync"

	genai_std "google.golang.org/genai"

	"promoreel/internal/domain/repositories"
)

// GenAI Client Pool実装
// 全Geminiサービスで同じクライアントを共有する
type genAIClientPool struct {
	client *genai_std.Client
	mutex  sync.RWMutex
}

func NewGenAIClientPool() repositories.GenAIClientPool {
	return &genAIClientPool{}
}

func (p *genAIClientPool) GetGenAIClient(
	ctx context.Context,
	geminiApiKey string,
) (*genai_std.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// ダブルチェックロッキング
	if p.client != nil {
		return p.client, nil
	}

	client, err := genai_std.NewClient(ctx, &genai_std.ClientConfig{
		APIKey:  geminiApiKey,
		Backend: genai_std.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client

	return p.client, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		// GenAI Clientはリソースクリーンアップ不要
		p.client = nil
	}
	return nil
}
