package embeddings

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// text-embedding-3-small vector length
const dimension = 1536

// Generator encodes text into embedding vectors via the OpenAI API
type Generator struct {
	client *openai.Client
}

// NewGenerator creates a new embeddings generator
func NewGenerator(apiKey string) *Generator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Generator{
		client: &client,
	}
}

// Encode creates an embedding vector for text
func (g *Generator) Encode(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	// Send as array with single element (works consistently)
	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: openai.EmbeddingModelTextEmbedding3Small,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	return toFloat32(resp.Data[0].Embedding), nil
}

// EncodeBatch creates embeddings for multiple texts at once
func (g *Generator) EncodeBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	// Filter out empty strings
	validTexts := make([]string, 0, len(texts))
	for _, text := range texts {
		if text != "" {
			validTexts = append(validTexts, text)
		}
	}

	if len(validTexts) == 0 {
		return nil, fmt.Errorf("all texts are empty")
	}

	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: validTexts,
		},
		Model: openai.EmbeddingModelTextEmbedding3Small,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		embeddings[i] = toFloat32(data.Embedding)
	}

	return embeddings, nil
}

// Dimension returns the vector length produced by the model
func (g *Generator) Dimension() int {
	return dimension
}

func toFloat32(embedding []float64) []float32 {
	out := make([]float32, len(embedding))
	for i, v := range embedding {
		out[i] = float32(v)
	}
	return out
}
