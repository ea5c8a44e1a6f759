package bootstrap

import (
	"log"

	"rag-support-be/internal/config"
	"rag-support-be/internal/controller"
	"rag-support-be/internal/pkg/logger"
	"rag-support-be/internal/repository/implementation"
	"rag-support-be/internal/service"
	"rag-support-be/pkg/corpus"
	"rag-support-be/pkg/embedding"
	"rag-support-be/pkg/llm/factory"
	"rag-support-be/pkg/rag/evaluation"
	"rag-support-be/pkg/rag/intent"
	"rag-support-be/pkg/rag/retrieval"
	"rag-support-be/pkg/rag/session"
	"rag-support-be/pkg/rag/synthesis"
	"rag-support-be/pkg/transcription"
	"rag-support-be/pkg/vectorindex"
	"rag-support-be/pkg/vectorindex/pgvector"
	"rag-support-be/pkg/vectorindex/pinecone"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	EvaluationController controller.IEvaluationController
	IndexController      controller.IIndexController
	VoiceController      controller.IVoiceController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
			cfg.Vector.Dimension,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Ai.OpenAIKey, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	chatProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.ChatModel, cfg.Ai.OllamaBaseURL, cfg.Ai.OpenAIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize chat LLM provider: %v", err)
	}
	classifierProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.ClassifierModel, cfg.Ai.OllamaBaseURL, cfg.Ai.OpenAIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize classifier LLM provider: %v", err)
	}
	graderProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.GraderModel, cfg.Ai.OllamaBaseURL, cfg.Ai.OpenAIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize grader LLM provider: %v", err)
	}
	denoiserProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.DenoiserModel, cfg.Ai.OllamaBaseURL, cfg.Ai.OpenAIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize denoiser LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (chat=%s)", cfg.Ai.LLMProvider, cfg.Ai.ChatModel)

	// 4. Vector index backend
	var index vectorindex.VectorIndex
	var indexAdmin vectorindex.IndexAdmin
	if cfg.Vector.Provider == "pgvector" {
		chunkRepo := implementation.NewChunkRepository(db)
		pgIndex := pgvector.NewIndex(chunkRepo, cfg.Vector.Dimension)
		index, indexAdmin = pgIndex, pgIndex
		log.Printf("[INFO] Using Vector Index: PGVECTOR")
	} else {
		pineconeClient := pinecone.NewClient(cfg.Vector.PineconeKey, cfg.Vector.PineconeHost)
		index, indexAdmin = pineconeClient, pineconeClient
		log.Printf("[INFO] Using Vector Index: PINECONE (%s)", cfg.Vector.IndexName)
	}

	// 5. RAG core
	sessions := session.NewStore(cfg.Session.TTL, cfg.Session.SweepInterval)
	classifier := intent.NewClassifier(classifierProvider, sysLogger)
	retriever := retrieval.NewEngine(embeddingProvider, index, sysLogger)
	synthesizer := synthesis.NewSynthesizer(classifier, retriever, sessions, chatProvider, sysLogger)
	grader := evaluation.NewEngine(graderProvider, sysLogger)

	// 6. Ingestion
	denoiser := corpus.NewDenoiser(denoiserProvider, sysLogger)
	ingestor := corpus.NewIngestor(embeddingProvider, index, denoiser, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.IngestTopic, ingestor, sysLogger)

	// 7. Voice
	audio := transcription.NewOpenAIAudio(cfg.Ai.OpenAIKey, cfg.Voice.Language, cfg.Voice.TTSVoice)

	// 8. Services
	chatService := service.NewChatService(synthesizer, sessions, sysLogger)
	evaluationService := service.NewEvaluationService(synthesizer, retriever, grader, sysLogger)
	indexService := service.NewIndexService(indexAdmin, pubSub, cfg.App.IngestTopic, sysLogger)
	voiceService := service.NewVoiceService(audio, audio, synthesizer, cfg.Voice.MinAudioSize, cfg.Voice.UseServerTTS, sysLogger)

	return &Container{
		ChatController:       controller.NewChatController(chatService),
		EvaluationController: controller.NewEvaluationController(evaluationService),
		IndexController:      controller.NewIndexController(indexService),
		VoiceController:      controller.NewVoiceController(voiceService),

		ConsumerService: consumerService,
	}
}
