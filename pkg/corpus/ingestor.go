package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/embedding"
	"rag-support-be/pkg/vectorindex"
)

// upsertBatchSize bounds one index upsert request.
const upsertBatchSize = 50

// Chunk is one embeddable unit of the corpus with its document metadata.
type Chunk struct {
	ID       string `json:"id"`
	Title    string `json:"titulo"`
	Category string `json:"categoria"`
	Content  string `json:"content"`
}

// Ingestor turns raw documents into indexed vectors: parse, chunk,
// optionally denoise, embed, upsert in batches.
type Ingestor struct {
	embeddingProvider embedding.EmbeddingProvider
	index             vectorindex.VectorIndex
	denoiser          *Denoiser // nil skips the denoising pass
	logger            logger.ILogger
}

func NewIngestor(
	embeddingProvider embedding.EmbeddingProvider,
	index vectorindex.VectorIndex,
	denoiser *Denoiser,
	log logger.ILogger,
) *Ingestor {
	return &Ingestor{
		embeddingProvider: embeddingProvider,
		index:             index,
		denoiser:          denoiser,
		logger:            log,
	}
}

// ChunkDocument parses one raw file and produces its chunks, denoised when a
// denoiser is configured. Documents with an empty body yield no chunks.
func (ing *Ingestor) ChunkDocument(ctx context.Context, raw string) []Chunk {
	doc := ParseDocument(raw)
	if strings.TrimSpace(doc.Body) == "" {
		return nil
	}

	var chunks []Chunk
	for _, content := range ChunkText(doc.Body, DefaultChunkTokens) {
		if ing.denoiser != nil {
			content = ing.denoiser.Denoise(ctx, content, doc.Category)
		}
		content = strings.TrimSpace(strings.ReplaceAll(content, `"`, ""))
		if content == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			ID:       uuid.NewString(),
			Title:    doc.Title,
			Category: doc.Category,
			Content:  content,
		})
	}
	return chunks
}

// IndexChunks embeds and upserts chunks in batches, returning how many made
// it into the index.
func (ing *Ingestor) IndexChunks(ctx context.Context, chunks []Chunk) (int, error) {
	indexed := 0
	for start := 0; start < len(chunks); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Content
		}
		embeddings, err := ing.embeddingProvider.EmbedBatch(ctx, texts)
		if err != nil {
			return indexed, fmt.Errorf("embedding batch failed: %w", err)
		}

		vectors := make([]vectorindex.Vector, len(batch))
		for i, c := range batch {
			vectors[i] = vectorindex.Vector{
				ID:     c.ID,
				Values: embeddings[i],
				Metadata: map[string]string{
					"titulo":    c.Title,
					"categoria": c.Category,
					"content":   c.Content,
				},
			}
		}
		if err := ing.index.Upsert(ctx, vectors); err != nil {
			return indexed, fmt.Errorf("index upsert failed: %w", err)
		}
		indexed += len(batch)

		ing.logger.Info("corpus", "batch indexed", map[string]interface{}{
			"batch_size": len(batch),
			"indexed":    indexed,
			"total":      len(chunks),
		})
	}
	return indexed, nil
}

// Ingest is the full path for one raw document.
func (ing *Ingestor) Ingest(ctx context.Context, raw string) (int, error) {
	return ing.IndexChunks(ctx, ing.ChunkDocument(ctx, raw))
}
