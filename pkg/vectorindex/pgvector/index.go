package pgvector

import (
	"context"
	"errors"
	"fmt"

	"rag-support-be/internal/entity"
	"rag-support-be/internal/repository/contract"
	"rag-support-be/pkg/vectorindex"

	"github.com/google/uuid"
)

// tableIndexName is what the single backing table answers to on the admin
// surface.
const tableIndexName = "corpus_chunks"

// ErrManagedSchema is returned for lifecycle calls the pgvector backend does
// not support; the table and its hnsw index come from migrations.
var ErrManagedSchema = errors.New("pgvector schema is managed by migrations, not the index API")

// Index adapts the gorm/pgvector chunk repository to the VectorIndex
// contract, so the retrieval engine stays backend-agnostic.
type Index struct {
	chunkRepo contract.ChunkRepository
	dimension int
}

var (
	_ vectorindex.VectorIndex = &Index{}
	_ vectorindex.IndexAdmin  = &Index{}
)

func NewIndex(chunkRepo contract.ChunkRepository, dimension int) *Index {
	return &Index{chunkRepo: chunkRepo, dimension: dimension}
}

func (i *Index) Query(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]vectorindex.Match, error) {
	category := ""
	if filter != nil {
		category = filter["categoria"]
	}

	scored, err := i.chunkRepo.SearchSimilarWithScore(ctx, vector, topK, category)
	if err != nil {
		return nil, fmt.Errorf("pgvector search failed: %w", err)
	}

	matches := make([]vectorindex.Match, len(scored))
	for idx, s := range scored {
		matches[idx] = vectorindex.Match{
			ID:    s.Chunk.Id.String(),
			Score: float32(s.Similarity),
			Metadata: map[string]string{
				"titulo":    s.Chunk.Title,
				"categoria": s.Chunk.Category,
				"content":   s.Chunk.Content,
			},
		}
	}
	return matches, nil
}

func (i *Index) Upsert(ctx context.Context, vectors []vectorindex.Vector) error {
	chunks := make([]*entity.CorpusChunk, len(vectors))
	for idx, v := range vectors {
		id, err := uuid.Parse(v.ID)
		if err != nil {
			// Ingestion ids are free-form; derive a stable UUID when needed.
			id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(v.ID))
		}
		chunks[idx] = &entity.CorpusChunk{
			Id:        id,
			Title:     v.Metadata["titulo"],
			Category:  v.Metadata["categoria"],
			Content:   v.Metadata["content"],
			Embedding: v.Values,
		}
	}
	return i.chunkRepo.UpsertBulk(ctx, chunks)
}

func (i *Index) CreateIndex(ctx context.Context, name string, dimension int) (*vectorindex.IndexDescription, error) {
	return nil, ErrManagedSchema
}

func (i *Index) ListIndexes(ctx context.Context) ([]vectorindex.IndexDescription, error) {
	desc, err := i.describe(ctx)
	if err != nil {
		return nil, err
	}
	return []vectorindex.IndexDescription{*desc}, nil
}

func (i *Index) DescribeIndex(ctx context.Context, name string) (*vectorindex.IndexDescription, error) {
	if name != tableIndexName {
		return nil, fmt.Errorf("unknown index %q", name)
	}
	return i.describe(ctx)
}

func (i *Index) describe(ctx context.Context) (*vectorindex.IndexDescription, error) {
	count, err := i.chunkRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting chunks: %w", err)
	}
	return &vectorindex.IndexDescription{
		Name:        tableIndexName,
		Dimension:   i.dimension,
		Metric:      "cosine",
		Status:      "ready",
		VectorCount: count,
	}, nil
}
