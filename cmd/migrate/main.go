package main

import (
	"log"
	"os"

	"rag-support-be/internal/model"
	"rag-support-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Extensions GORM AutoMigrate doesn't handle
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Fatalf("Error: Failed to run setup SQL %q: %v", sql, err)
		}
	}

	// 4. Schema
	if err := db.AutoMigrate(&model.CorpusChunk{}); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// 5. ANN index for cosine search
	indexSQL := `CREATE INDEX IF NOT EXISTS idx_corpus_chunks_embedding
		ON corpus_chunks USING hnsw (embedding_value vector_cosine_ops);`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Fatal("Error: Failed to create vector index:", err)
	}

	log.Println("✅ Migration finished")
}
