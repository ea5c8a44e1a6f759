package embedding

import "context"

// EmbeddingProvider turns text into a fixed-length vector.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Dimension reports the vector length the provider produces.
	Dimension() int
}
