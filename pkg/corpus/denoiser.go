package corpus

import (
	"context"
	"strings"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/llm"
)

// Denoiser asks a cheap model to drop nonsense sentences from a chunk before
// it is embedded. Failure is non-fatal: the original text goes through
// unchanged when the call errors out.
type Denoiser struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewDenoiser(llmProvider llm.LLMProvider, log logger.ILogger) *Denoiser {
	return &Denoiser{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (d *Denoiser) Denoise(ctx context.Context, content, category string) string {
	reply, err := d.llmProvider.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: "Você é um assistente que limpa textos técnicos."},
		{Role: llm.RoleUser, Content: d.buildPrompt(content, category)},
	}, llm.WithTemperature(0.0))
	if err != nil {
		d.logger.Warn("corpus", "denoising call failed, keeping original chunk", map[string]interface{}{
			"error": err.Error(),
		})
		return content
	}
	return PostprocessDenoised(reply)
}

func (d *Denoiser) buildPrompt(content, category string) string {
	var prompt strings.Builder

	prompt.WriteString("Você é um assistente que filtra ruídos e frases sem sentido em textos técnicos.\n\n")
	prompt.WriteString("Texto original:\n\"\"\"")
	prompt.WriteString(content)
	prompt.WriteString("\"\"\"\n\nCategoria: ")
	prompt.WriteString(category)
	prompt.WriteString("\n\nRemova quaisquer frases ou trechos que não façam sentido, estejam fora de contexto ou sejam ruído ")
	prompt.WriteString("(ex: 'banana azul voadora', números aleatórios, frases irrelevantes). ")
	prompt.WriteString("Retorne apenas o conteúdo útil e relevante.")

	return prompt.String()
}
