package retrieval

import (
	"context"
	"fmt"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/embedding"
	"rag-support-be/pkg/rag/category"
	"rag-support-be/pkg/store"
	"rag-support-be/pkg/vectorindex"
)

// MinEvidenceForRecall is the evidence floor that keeps recall@3 well-defined.
const MinEvidenceForRecall = 3

// Engine wraps query embedding plus index lookup and normalizes the raw
// matches into evidence chunks. Ordering is whatever the index returns;
// the engine never re-ranks and never retries.
type Engine struct {
	embeddingProvider embedding.EmbeddingProvider
	index             vectorindex.VectorIndex
	logger            logger.ILogger
}

func NewEngine(embeddingProvider embedding.EmbeddingProvider, index vectorindex.VectorIndex, log logger.ILogger) *Engine {
	return &Engine{
		embeddingProvider: embeddingProvider,
		index:             index,
		logger:            log,
	}
}

// Options tunes a single retrieval call.
type Options struct {
	MinResults int // pad with empty-content placeholders up to this floor
}

type Option func(*Options)

// WithMinResults pads the result with empty placeholder chunks up to n
// entries. Used by callers that need recall@3 semantics.
func WithMinResults(n int) Option {
	return func(o *Options) {
		o.MinResults = n
	}
}

// Retrieve embeds the query once and runs a nearest-neighbor lookup,
// optionally filtered by category. Result length is at most topK unless a
// minimum floor was requested.
func (e *Engine) Retrieve(ctx context.Context, query string, cat category.Category, topK int, opts ...Option) ([]store.EvidenceChunk, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	vector, err := e.embeddingProvider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}

	var filter map[string]string
	if cat != "" {
		filter = map[string]string{"categoria": string(cat)}
	}

	matches, err := e.index.Query(ctx, vector, topK, filter)
	if err != nil {
		return nil, fmt.Errorf("vector index query failed: %w", err)
	}

	e.logger.Debug("retrieval", "vector search completed", map[string]interface{}{
		"matches":  len(matches),
		"top_k":    topK,
		"category": string(cat),
	})

	chunks := make([]store.EvidenceChunk, 0, len(matches))
	for _, m := range matches {
		chunks = append(chunks, normalizeMatch(m))
	}

	if options.MinResults > 0 {
		chunks = PadChunks(chunks, options.MinResults)
	}
	return chunks, nil
}

// normalizeMatch defaults every missing metadata field to an empty string.
func normalizeMatch(m vectorindex.Match) store.EvidenceChunk {
	md := m.Metadata
	if md == nil {
		md = map[string]string{}
	}
	return store.EvidenceChunk{
		ID:       m.ID,
		Score:    m.Score,
		Title:    md["titulo"],
		Category: md["categoria"],
		Content:  md["content"],
	}
}

// PadChunks appends empty-content placeholders until chunks has at least
// min entries. The input slice is never mutated.
func PadChunks(chunks []store.EvidenceChunk, min int) []store.EvidenceChunk {
	if len(chunks) >= min {
		return chunks
	}
	padded := make([]store.EvidenceChunk, len(chunks), min)
	copy(padded, chunks)
	for len(padded) < min {
		padded = append(padded, store.EvidenceChunk{})
	}
	return padded
}
