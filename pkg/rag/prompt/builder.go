package prompt

import (
	"fmt"
	"strings"

	"rag-support-be/pkg/store"
)

// SystemPersona is the conversational system instruction: answer only from
// the supplied context, never cite source labels in the visible text.
const SystemPersona = "Você é um agente de suporte RAG conversacional em pt-BR. " +
	"Responda APENAS com base no contexto fornecido. " +
	"Não cite fontes no texto do usuário. " +
	"Se algo não estiver no contexto, diga que não há informação suficiente. " +
	"Seja cordial, claro e útil."

// SingleShotPersona is the system instruction for the one-shot answer path.
const SingleShotPersona = "Responda APENAS com base no CONTEXTO. Não invente e não cite fontes."

// AssembleContext labels each non-empty chunk "(C{i} • {title}) {content}"
// in input order and joins with newlines. Chunks with empty content are
// skipped. Pure function: identical input yields byte-identical output.
func AssembleContext(chunks []store.EvidenceChunk) string {
	lines := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		title := strings.TrimSpace(chunk.Title)
		if title == "" {
			title = "-"
		}
		content := strings.TrimSpace(chunk.Content)
		if content == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("(C%d • %s) %s", i+1, title, content))
	}
	return strings.Join(lines, "\n")
}

// BuildConversational embeds the question and the labeled context into the
// user turn of the conversational flow. The model reasons in two stages
// (facts then answer) and may suggest follow-up topics that exist in the
// context.
func BuildConversational(question, contextBlock string) string {
	var b strings.Builder

	b.WriteString("Você é um assistente RAG conversacional. Use EXCLUSIVAMENTE o CONTEXTO (C1..Cn).\n")
	b.WriteString("NÃO invente nada fora do contexto e NÃO cite fontes/ids na resposta (sem [C1], [Fonte], etc.).\n\n")

	b.WriteString("ESTILO:\n")
	b.WriteString("- Tom humano, cordial e profissional.\n")
	b.WriteString("- Responda direto, mas com clareza; parágrafos curtos ou bullets.\n")
	b.WriteString("- Se a pergunta pedir algo que não está no contexto, diga isso explicitamente.\n")
	b.WriteString("- Ao final, se fizer sentido, sugira 2-3 \"Próximos assuntos\" relevantes, mas somente se estiverem no CONTEXTO.\n\n")

	b.WriteString("SAÍDA EM 2 PARTES (apenas para você raciocinar; entregue ao usuário só a resposta final e as sugestões):\n")
	b.WriteString("1) Fatos do contexto: liste pontos únicos relevantes (evite redundâncias; inclua limites/condições/pré-requisitos).\n")
	b.WriteString("2) Resposta final (conversacional), sem citar fontes. Depois, inclua \"Quer saber também sobre:\" com 2-3 bullets\n")
	b.WriteString("   de assuntos relacionados que constem no contexto. Se não houver, omita a seção.\n\n")

	b.WriteString("### PERGUNTA\n")
	b.WriteString(question)
	b.WriteString("\n\n### CONTEXTO (C1..Cn)\n")
	b.WriteString(contextBlock)

	return b.String()
}

// BuildSingleShot is the one-shot variant used by the batch answer path:
// same grounding rules, structured summary-plus-bullets delivery.
func BuildSingleShot(question, contextBlock string) string {
	var b strings.Builder

	b.WriteString("Você é um assistente RAG. Use EXCLUSIVAMENTE o bloco CONTEXTO (C1..Cn) para responder.\n")
	b.WriteString("NÃO invente, NÃO traga conhecimento externo e NÃO cite fontes/rotulagens (sem [C1], [Fonte], etc.).\n\n")

	b.WriteString("TAREFA EM 2 ETAPAS:\n")
	b.WriteString("1) Fatos do contexto: liste os fatos únicos e relevantes presentes no CONTEXTO (inclua limites, condições,\n")
	b.WriteString("   exceções, pré-requisitos e processos quando houver; remova redundâncias).\n")
	b.WriteString("2) Resposta final: componha uma resposta clara e completa para a PERGUNTA:\n")
	b.WriteString("   - Comece com 2-4 linhas de resumo objetivo.\n")
	b.WriteString("   - Depois traga bullets práticos (3-8 itens) cobrindo os pontos relevantes do CONTEXTO.\n")
	b.WriteString("   - Se algo pedido na pergunta NÃO estiver no CONTEXTO, diga explicitamente:\n")
	b.WriteString("     \"Não há informação suficiente no contexto para <X>\".\n\n")

	b.WriteString("REGRAS:\n")
	b.WriteString("- Varra TODOS os trechos do CONTEXTO e incorpore os pontos não repetidos.\n")
	b.WriteString("- Não repita o mesmo item.\n")
	b.WriteString("- Linguagem simples, profissional, pt-BR.\n")
	b.WriteString("- Sem citações de fonte na resposta.\n\n")

	b.WriteString("### PERGUNTA\n")
	b.WriteString(question)
	b.WriteString("\n\n### CONTEXTO (C1..Cn)\n")
	b.WriteString(contextBlock)

	return b.String()
}
