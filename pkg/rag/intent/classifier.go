package intent

import (
	"context"
	"fmt"
	"strings"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/llm"
	"rag-support-be/pkg/rag/category"
)

// Classifier maps a question onto the fixed category set using a
// low-temperature LLM call plus a deterministic fallback chain. Classify is
// total over the category type: it never fails and never returns an
// out-of-set value.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewClassifier(llmProvider llm.LLMProvider, log logger.ILogger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Classify asks the model for the exact category name and resolves the raw
// reply through exact match, then case-insensitive substring match in either
// direction, then the designated default. One model call per invocation,
// no caching.
func (c *Classifier) Classify(ctx context.Context, question string) category.Category {
	reply, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: "Você é um classificador de intenções."},
		{Role: llm.RoleUser, Content: c.buildPrompt(question)},
	}, llm.WithTemperature(0.0))
	if err != nil {
		c.logger.Warn("intent", "classification call failed, using default category", map[string]interface{}{
			"error": err.Error(),
		})
		return category.Default()
	}

	if cat, ok := category.Match(reply); ok {
		return cat
	}

	c.logger.Warn("intent", "classifier reply outside category set, using default", map[string]interface{}{
		"reply": strings.TrimSpace(reply),
	})
	return category.Default()
}

func (c *Classifier) buildPrompt(question string) string {
	var prompt strings.Builder

	prompt.WriteString("Classifique a pergunta abaixo em UMA das categorias da lista.\n")
	prompt.WriteString("Responda só com o nome EXATO da categoria.\n\n")

	prompt.WriteString("Categorias:\n")
	for _, cat := range category.All() {
		prompt.WriteString(fmt.Sprintf("- %s\n", cat))
	}

	prompt.WriteString("\nPergunta: \"")
	prompt.WriteString(question)
	prompt.WriteString("\"")

	return prompt.String()
}
