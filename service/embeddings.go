package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/stepwise-ai/semkernel/core/config"
	"github.com/stepwise-ai/semkernel/core/response"
)

// EmbeddingsService converts text into embedding vectors through an
// embeddings deployment on the same resource.
type EmbeddingsService struct {
	chat *ChatService
}

// NewEmbeddingsService creates an EmbeddingsService bound to
// cfg.EmbeddingDeployment.
func NewEmbeddingsService(cfg *config.Settings, opts ...Option) *EmbeddingsService {
	opts = append(opts, WithDeployment(cfg.EmbeddingDeployment))
	return &EmbeddingsService{chat: NewChatService(cfg, opts...)}
}

type embeddingsRequest struct {
	Input []string `json:"input"`
}

type embeddingsResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Usage *response.TokenUsage `json:"usage,omitempty"`
}

// Embed returns one vector per input text, in input order.
func (s *EmbeddingsService) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/embeddings?api-version=%s",
		s.chat.endpoint, s.chat.deployment, s.chat.apiVersion)

	resp, err := s.chat.post(ctx, url, embeddingsRequest{Input: texts})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed embeddingsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse embeddings response: %w", err)
	}

	vectors := make([][]float32, len(texts))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
