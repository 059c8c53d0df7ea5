package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"
)

// GeminiService is the model provider shared read-only across requests. It is
// initialized once by the host process and injected into the scoring engine.
type GeminiService interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
	retryDelay time.Duration
}

func NewGeminiService(apiKey string, retryDelay time.Duration) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  "gemini-2.5-flash",
		embedModel: "text-embedding-004",
		retryDelay: retryDelay,
	}, nil
}

// EmbedText implements GeminiService.
func (g *geminiService) EmbedText(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// embedBatchSize caps how many contents go into one EmbedContent request; the
// API rejects batches above 100.
const embedBatchSize = 100

// EmbedTexts implements GeminiService. Texts are embedded in request-sized
// batches so keyphrase candidate sets of any length stay within the provider's
// per-request content limit.
func (g *geminiService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	return embedInBatches(texts, embedBatchSize, func(batch []string) ([][]float32, error) {
		contents := make([]*genai.Content, 0, len(batch))
		for _, t := range batch {
			if len(t) > 40000 {
				t = t[:40000]
			}
			contents = append(contents, genai.NewContentFromText(t, genai.RoleUser))
		}

		result, err := g.client.Models.EmbedContent(ctx, g.embedModel, contents, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to generate embeddings: %w", err)
		}
		if result == nil {
			return nil, fmt.Errorf("empty embedding result")
		}
		if len(result.Embeddings) != len(batch) {
			return nil, fmt.Errorf("embedding result count mismatch: got %d, want %d",
				len(result.Embeddings), len(batch))
		}

		vectors := make([][]float32, len(batch))
		for i, emb := range result.Embeddings {
			vectors[i] = emb.Values
		}
		return vectors, nil
	})
}

// embedInBatches splits texts into batches of at most batchSize, embeds each
// batch in order, and concatenates the vectors so output index i corresponds
// to texts[i].
func embedInBatches(texts []string, batchSize int, embed func([]string) ([][]float32, error)) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := embed(texts[start:end])
		if err != nil {
			return nil, err
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("embedding batch size mismatch: got %d, want %d",
				len(batch), end-start)
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// GenerateTextWithRetry implements GeminiService. Attempts are spaced by the
// configured retry delay and abort as soon as the context is cancelled.
func (g *geminiService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := g.GenerateText(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if attempt < maxRetries {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(g.retryDelay):
			}
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}
