package contract

import (
	"context"

	"rag-support-be/internal/entity"
)

type ChunkRepository interface {
	UpsertBulk(ctx context.Context, chunks []*entity.CorpusChunk) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilarWithScore runs a cosine nearest-neighbor search. An empty
	// category means no filtering.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, category string) ([]*entity.ScoredCorpusChunk, error)
}
