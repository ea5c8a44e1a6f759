package synthesis

import (
	"context"
	"fmt"
	"strings"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/llm"
	"rag-support-be/pkg/rag/intent"
	"rag-support-be/pkg/rag/prompt"
	"rag-support-be/pkg/rag/retrieval"
	"rag-support-be/pkg/rag/session"
	"rag-support-be/pkg/store"
)

const (
	answerTopK    = 6
	historyWindow = 20

	answerTemperature       = 0.45
	conversationalMaxTokens = 700
	singleShotMaxTokens     = 650
)

// Synthesizer composes grounded answers: classify intent, retrieve
// category-filtered evidence, assemble the context block and call the
// model. The evidence it returns is exactly the set of chunks placed in
// the prompt; there is no re-retrieval between prompting and returning.
type Synthesizer struct {
	classifier  *intent.Classifier
	retriever   *retrieval.Engine
	sessions    *session.Store
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewSynthesizer(
	classifier *intent.Classifier,
	retriever *retrieval.Engine,
	sessions *session.Store,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) *Synthesizer {
	return &Synthesizer{
		classifier:  classifier,
		retriever:   retriever,
		sessions:    sessions,
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Answer runs the conversational flow for one session turn. History is
// trimmed to the most recent turns at read time only; the stored history
// keeps growing until the session expires.
func (s *Synthesizer) Answer(ctx context.Context, sessionID, question string) (*store.AnswerResult, error) {
	cat := s.classifier.Classify(ctx, question)

	chunks, err := s.retriever.Retrieve(ctx, question, cat, answerTopK)
	if err != nil {
		return nil, err
	}
	contextBlock := prompt.AssembleContext(chunks)

	messages := make([]llm.Message, 0, historyWindow+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: prompt.SystemPersona})
	for _, turn := range s.sessions.Recent(sessionID, historyWindow) {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: prompt.BuildConversational(question, contextBlock),
	})

	answer, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(answerTemperature),
		llm.WithMaxTokens(conversationalMaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("answer synthesis failed: %w", err)
	}
	answer = strings.TrimSpace(answer)

	s.sessions.Append(sessionID, store.ConversationTurn{Role: store.TurnRoleUser, Content: question})
	s.sessions.Append(sessionID, store.ConversationTurn{Role: store.TurnRoleAssistant, Content: answer})

	s.logger.Info("synthesis", "conversational answer generated", map[string]interface{}{
		"session_id": sessionID,
		"category":   string(cat),
		"evidence":   len(chunks),
	})

	return &store.AnswerResult{
		SessionID: sessionID,
		Category:  string(cat),
		Answer:    answer,
		Evidence:  chunks,
	}, nil
}

// AnswerSingleShot runs the sessionless flow used by the batch answer and
// evaluation paths.
func (s *Synthesizer) AnswerSingleShot(ctx context.Context, question string) (*store.AnswerResult, error) {
	cat := s.classifier.Classify(ctx, question)

	chunks, err := s.retriever.Retrieve(ctx, question, cat, answerTopK)
	if err != nil {
		return nil, err
	}
	contextBlock := prompt.AssembleContext(chunks)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.SingleShotPersona},
		{Role: llm.RoleUser, Content: prompt.BuildSingleShot(question, contextBlock)},
	}

	answer, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(answerTemperature),
		llm.WithMaxTokens(singleShotMaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("answer synthesis failed: %w", err)
	}

	return &store.AnswerResult{
		Category: string(cat),
		Answer:   strings.TrimSpace(answer),
		Evidence: chunks,
	}, nil
}
