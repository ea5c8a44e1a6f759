package mapper

import (
	"time"

	"rag-support-be/internal/entity"
	"rag-support-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func (m *ChunkMapper) ToEntity(c *model.CorpusChunk) *entity.CorpusChunk {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.CorpusChunk{
		Id:        c.Id,
		Title:     c.Title,
		Category:  c.Category,
		Content:   c.Content,
		Embedding: c.EmbeddingValue.Slice(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChunkMapper) ToModel(c *entity.CorpusChunk) *model.CorpusChunk {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.CorpusChunk{
		Id:             c.Id,
		Title:          c.Title,
		Category:       c.Category,
		Content:        c.Content,
		EmbeddingValue: pgvector.NewVector(c.Embedding),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
