package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rag-support-be/internal/config"
	"rag-support-be/internal/pkg/logger"
	"rag-support-be/internal/repository/implementation"
	"rag-support-be/pkg/corpus"
	"rag-support-be/pkg/database"
	"rag-support-be/pkg/embedding"
	"rag-support-be/pkg/llm/factory"
	"rag-support-be/pkg/vectorindex"
	"rag-support-be/pkg/vectorindex/pgvector"
	"rag-support-be/pkg/vectorindex/pinecone"
)

// Offline bulk ingestion: reads every .txt document in a directory, cleans
// and chunks it, optionally denoises each chunk with a cheap model, embeds
// and upserts the result into the configured vector index.
func main() {
	dir := flag.String("dir", "documentos", "directory with .txt corpus documents")
	denoise := flag.Bool("denoise", true, "run the LLM denoising pass on each chunk")
	flag.Parse()

	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel, cfg.Vector.Dimension)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIKey, cfg.Ai.EmbeddingModel)
	}

	var index vectorindex.VectorIndex
	if cfg.Vector.Provider == "pgvector" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("Error: Failed to connect to database: %v", err)
		}
		index = pgvector.NewIndex(implementation.NewChunkRepository(db), cfg.Vector.Dimension)
	} else {
		index = pinecone.NewClient(cfg.Vector.PineconeKey, cfg.Vector.PineconeHost)
	}

	var denoiser *corpus.Denoiser
	if *denoise {
		denoiserProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.DenoiserModel, cfg.Ai.OllamaBaseURL, cfg.Ai.OpenAIKey)
		if err != nil {
			log.Fatalf("Error: Failed to initialize denoiser provider: %v", err)
		}
		denoiser = corpus.NewDenoiser(denoiserProvider, sysLogger)
	}

	ingestor := corpus.NewIngestor(embeddingProvider, index, denoiser, sysLogger)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Error: Failed to read corpus directory %s: %v", *dir, err)
	}

	ctx := context.Background()
	totalChunks := 0
	totalDocs := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		path := filepath.Join(*dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			continue
		}

		indexed, err := ingestor.Ingest(ctx, string(raw))
		if err != nil {
			log.Fatalf("Error: ingestion failed for %s after %d chunks: %v", path, indexed, err)
		}

		log.Printf("Ingested %s (%d chunks)", entry.Name(), indexed)
		totalDocs++
		totalChunks += indexed
	}

	log.Printf("✅ Ingestion finished: %d documents, %d chunks", totalDocs, totalChunks)
}
