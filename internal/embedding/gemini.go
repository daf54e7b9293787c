package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Default settings for the Gemini-backed vectorizer
const (
	defaultEmbedModel = "text-embedding-004"
	defaultTimeout    = 30 * time.Second
	maxEmbedChars     = 40000
)

// GeminiVectorizer is the primary strategy: a pretrained sentence-embedding
// model invoked as an external black box. Vectors are L2-normalized before
// return.
type GeminiVectorizer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiVectorizer creates a vectorizer backed by the Gemini embedding API.
func NewGeminiVectorizer(ctx context.Context, apiKey string) (*GeminiVectorizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiVectorizer{
		client:  client,
		model:   defaultEmbedModel,
		timeout: defaultTimeout,
	}, nil
}

// WithTimeout sets the per-call timeout for embedding requests.
func (g *GeminiVectorizer) WithTimeout(timeout time.Duration) *GeminiVectorizer {
	g.timeout = timeout
	return g
}

// Vectorize embeds text with the configured model and returns the pooled,
// L2-normalized vector.
func (g *GeminiVectorizer) Vectorize(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}
	// The embedding endpoint rejects oversized inputs; truncate rather
	// than fail since job descriptions can run long.
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	em := g.client.EmbeddingModel(g.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	values := make([]float64, len(res.Embedding.Values))
	for i, v := range res.Embedding.Values {
		values[i] = float64(v)
	}
	l2Normalize(values)
	return values, nil
}

// Close releases the underlying API client.
func (g *GeminiVectorizer) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
