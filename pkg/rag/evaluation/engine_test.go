package evaluation

import (
	"context"
	"strings"
	"testing"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/llm"
)

type recordingLLM struct {
	reply      string
	lastPrompt string
}

func (r *recordingLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	r.lastPrompt = history[len(history)-1].Content
	return r.reply, nil
}

func (r *recordingLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return r.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}

func TestEvaluatePadsChunksToThree(t *testing.T) {
	model := &recordingLLM{reply: `{"precisao": 6, "cobertura": 6, "recall3": 6, "justificativa": "ok"}`}
	engine := NewEngine(model, logger.NewNopLogger())

	result, err := engine.Evaluate(context.Background(), "pergunta", "resposta", []string{"único chunk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.SourceChunks) != 3 {
		t.Fatalf("source chunks = %d, want 3", len(result.SourceChunks))
	}
	if result.SourceChunks[0] != "único chunk" || result.SourceChunks[1] != "" || result.SourceChunks[2] != "" {
		t.Errorf("source chunks = %v", result.SourceChunks)
	}
	for _, label := range []string{"[C1] único chunk", "[C2] ", "[C3] "} {
		if !strings.Contains(model.lastPrompt, label) {
			t.Errorf("prompt missing label %q", label)
		}
	}
}

func TestEvaluateIncludesQuestionAndAnswer(t *testing.T) {
	model := &recordingLLM{reply: `{"precisao": 10}`}
	engine := NewEngine(model, logger.NewNopLogger())

	if _, err := engine.Evaluate(context.Background(), "qual o limite?", "o limite é definido por análise", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(model.lastPrompt, "### Pergunta\nqual o limite?") {
		t.Errorf("prompt missing question section")
	}
	if !strings.Contains(model.lastPrompt, "### Resposta\no limite é definido por análise") {
		t.Errorf("prompt missing answer section")
	}
}

func TestEvaluateAppliesCorroboration(t *testing.T) {
	model := &recordingLLM{reply: `{"precisao": 8, "cobertura": 7, "recall3": 6, "justificativa": "A resposta menciona bureaus sem evidência."}`}
	engine := NewEngine(model, logger.NewNopLogger())

	result, err := engine.Evaluate(context.Background(), "pergunta", "resposta", []string{
		"A análise consulta bureaus externos de crédito.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(result.Justification, "Evidência confirmada nos chunks sobre 'bureaus externos'.") {
		t.Errorf("corroboration not applied: %q", result.Justification)
	}
}

func TestEvaluateSurvivesMalformedReply(t *testing.T) {
	model := &recordingLLM{reply: "Precisão: 8, Cobertura: 6, Recall: 5, justificativa: ok"}
	engine := NewEngine(model, logger.NewNopLogger())

	result, err := engine.Evaluate(context.Background(), "pergunta", "resposta", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Precision != 8 || result.Coverage != 6 || result.RecallAt3 != 5 || result.Justification != "ok" {
		t.Errorf("result = %+v", result)
	}
}
