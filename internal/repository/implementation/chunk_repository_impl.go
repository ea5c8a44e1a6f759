package implementation

import (
	"context"

	"rag-support-be/internal/entity"
	"rag-support-be/internal/mapper"
	"rag-support-be/internal/model"
	"rag-support-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkMapper
}

func NewChunkRepository(db *gorm.DB) contract.ChunkRepository {
	return &ChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkMapper(),
	}
}

func (r *ChunkRepositoryImpl) UpsertBulk(ctx context.Context, chunks []*entity.CorpusChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.CorpusChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(models, 50).Error
}

func (r *ChunkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CorpusChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores.
// Cosine distance in pgvector is 1 - cosine_similarity, so the select
// computes 1 - (embedding_value <=> query_vector).
func (r *ChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, category string) ([]*entity.ScoredCorpusChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.CorpusChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("corpus_chunks").
		Select("corpus_chunks.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("deleted_at IS NULL")

	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*entity.ScoredCorpusChunk, len(results))
	for i, res := range results {
		scored[i] = &entity.ScoredCorpusChunk{
			Chunk:      r.mapper.ToEntity(&res.CorpusChunk),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
