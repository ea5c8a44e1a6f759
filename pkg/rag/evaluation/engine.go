package evaluation

import (
	"context"
	"fmt"
	"strings"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/llm"
	"rag-support-be/pkg/rag/retrieval"
)

// Evidence statuses the grader may assign to a claim.
const (
	StatusSupported    = "suportado"
	StatusContradicted = "contradito"
	StatusNotFound     = "nao_encontrado"
)

// EvidenceRecord ties one claim from the graded answer to the chunks that
// support or contradict it.
type EvidenceRecord struct {
	ClaimSnippet string   `json:"trecho_resposta"`
	Status       string   `json:"status"`
	CitedChunks  []string `json:"chunks_citados"`
	Quote        string   `json:"evidencia"`
}

// Result is a single graded question/answer pair. Scores are integers in
// [0,10] after decoding; SourceChunks always has at least 3 entries so
// recall@3 stays well-defined.
type Result struct {
	Precision     int              `json:"precisao"`
	Coverage      int              `json:"cobertura"`
	RecallAt3     int              `json:"recall3"`
	Justification string           `json:"justificativa"`
	Evidence      []EvidenceRecord `json:"evidencias"`
	SourceChunks  []string         `json:"fontes"`
}

// Engine grades an answer against its evidence with one model call followed
// by a two-tier decode and a narrow corroboration pass.
type Engine struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewEngine(llmProvider llm.LLMProvider, log logger.ILogger) *Engine {
	return &Engine{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Evaluate grades answer against chunks. Chunks are padded with empty
// strings up to 3 entries before grading, and the padded list is what the
// result reports as its sources. Only a transport failure returns an error;
// malformed grader output degrades to zeroed scores instead.
func (e *Engine) Evaluate(ctx context.Context, question, answer string, chunks []string) (*Result, error) {
	padded := padChunks(chunks, retrieval.MinEvidenceForRecall)

	reply, err := e.llmProvider.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: "Você avalia respostas RAG e SEMPRE cita chunks [C#] como evidência. Devolva somente JSON."},
		{Role: llm.RoleUser, Content: buildGradingPrompt(question, answer, padded)},
	})
	if err != nil {
		return nil, fmt.Errorf("grading call failed: %w", err)
	}

	result := Decode(reply, padded)
	ApplyCorroboration(result, padded)

	e.logger.Debug("evaluation", "answer graded", map[string]interface{}{
		"precisao":  result.Precision,
		"cobertura": result.Coverage,
		"recall3":   result.RecallAt3,
	})
	return result, nil
}

func padChunks(chunks []string, min int) []string {
	if len(chunks) >= min {
		return chunks
	}
	padded := make([]string, len(chunks), min)
	copy(padded, chunks)
	for len(padded) < min {
		padded = append(padded, "")
	}
	return padded
}

func buildGradingPrompt(question, answer string, chunks []string) string {
	labeled := make([]string, len(chunks))
	for i, c := range chunks {
		labeled[i] = fmt.Sprintf("[C%d] %s", i+1, c)
	}

	var prompt strings.Builder
	prompt.WriteString("Você é um avaliador de respostas RAG. Avalie usando SOMENTE os chunks abaixo.\n\n")

	prompt.WriteString("REGRAS IMPORTANTES:\n")
	prompt.WriteString("- Se uma afirmação da resposta aparecer em QUALQUER chunk, marque como \"suportado\" e cite o(s) ID(s) [C#].\n")
	prompt.WriteString("- NÃO marque \"nao_encontrado\" se a informação existir em algum chunk.\n")
	prompt.WriteString("- Se houver contradição, marque \"contradito\" e cite as evidências.\n")
	prompt.WriteString("- Cada afirmação relevante deve ter status e evidência.\n\n")

	prompt.WriteString("Devolva APENAS JSON válido, neste formato:\n")
	prompt.WriteString(`{
  "precisao": 0-10,
  "cobertura": 0-10,
  "recall3": 0-10,
  "justificativa": "texto curto",
  "evidencias": [
    {
      "trecho_resposta": "string",
      "status": "suportado|contradito|nao_encontrado",
      "chunks_citados": ["C1","C3"],
      "evidencia": "trecho literal copiado do(s) chunk(s)"
    }
  ]
}`)
	prompt.WriteString("\n\nDefinições:\n")
	prompt.WriteString("- Precisão: quão correta está a resposta vs. os chunks.\n")
	prompt.WriteString("- Cobertura: o quanto a resposta cobre os pontos relevantes dos chunks.\n")
	prompt.WriteString("- Recall@3: quão bem a resposta aproveita os 3 principais trechos.\n\n")

	prompt.WriteString("### Pergunta\n")
	prompt.WriteString(question)
	prompt.WriteString("\n\n### Resposta\n")
	prompt.WriteString(answer)
	prompt.WriteString("\n\n### Chunks\n")
	prompt.WriteString(strings.Join(labeled, "\n\n"))

	return prompt.String()
}
