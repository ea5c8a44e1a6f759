package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Vector   VectorConfig
	Ai       AIConfig
	Voice    VoiceConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	IngestTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type VectorConfig struct {
	Provider     string // "pinecone" or "pgvector"
	PineconeKey  string
	PineconeHost string
	IndexName    string
	Dimension    int
}

type AIConfig struct {
	OpenAIKey         string
	LLMProvider       string // "openai" or "ollama"
	ChatModel         string
	ClassifierModel   string
	GraderModel       string
	DenoiserModel     string
	EmbeddingProvider string
	EmbeddingModel    string
	OllamaBaseURL     string
	OllamaModel       string
}

type VoiceConfig struct {
	Language     string
	TTSVoice     string
	UseServerTTS bool
	MinAudioSize int
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			IngestTopic:        getEnv("INGEST_DOCUMENT_TOPIC_NAME", "INGEST_CORPUS_DOCUMENT"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Vector: VectorConfig{
			Provider:     getEnv("VECTOR_PROVIDER", "pinecone"),
			PineconeKey:  getEnv("PINECONE_API_KEY", ""),
			PineconeHost: getEnv("PINECONE_INDEX_HOST", ""),
			IndexName:    getEnv("PINECONE_INDEX_NAME", "testeanalistasr"),
			Dimension:    getEnvAsInt("VECTOR_DIMENSION", 1536),
		},
		Ai: AIConfig{
			OpenAIKey:         getEnv("OPENAI_API_KEY", ""),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			ChatModel:         getEnv("CHAT_MODEL", "gpt-4o-mini"),
			ClassifierModel:   getEnv("CLASSIFIER_MODEL", "gpt-4o-mini"),
			GraderModel:       getEnv("GRADER_MODEL", "gpt-5"),
			DenoiserModel:     getEnv("DENOISER_MODEL", "gpt-3.5-turbo"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_MODEL", "llama3"),
		},
		Voice: VoiceConfig{
			Language:     getEnv("VOICE_LANGUAGE", "pt"),
			TTSVoice:     getEnv("TTS_VOICE", "alloy"),
			UseServerTTS: getEnvAsBool("USE_SERVER_TTS", false),
			MinAudioSize: getEnvAsInt("VOICE_MIN_AUDIO_BYTES", 2000),
		},
		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", time.Hour),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
