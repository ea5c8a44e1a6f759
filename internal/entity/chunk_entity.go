package entity

import (
	"time"

	"github.com/google/uuid"
)

// CorpusChunk is an embedded passage of the support corpus.
type CorpusChunk struct {
	Id        uuid.UUID
	Title     string
	Category  string
	Content   string
	Embedding []float32
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ScoredCorpusChunk pairs a chunk with its cosine similarity to a query.
type ScoredCorpusChunk struct {
	Chunk      *CorpusChunk
	Similarity float64
}
