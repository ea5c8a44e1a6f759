package prompt

import (
	"strings"
	"testing"

	"rag-support-be/pkg/store"
)

func TestAssembleContext(t *testing.T) {
	chunks := []store.EvidenceChunk{
		{Title: "Limites de crédito", Content: "O limite inicial é definido na análise."},
		{Title: "Vazio", Content: ""},
		{Title: "", Content: "Conteúdo sem título."},
	}

	got := AssembleContext(chunks)
	want := "(C1 • Limites de crédito) O limite inicial é definido na análise.\n" +
		"(C3 • -) Conteúdo sem título."
	if got != want {
		t.Errorf("AssembleContext() =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleContextDeterministic(t *testing.T) {
	chunks := []store.EvidenceChunk{
		{Title: "A", Content: "primeiro"},
		{Title: "B", Content: "segundo"},
	}
	first := AssembleContext(chunks)
	second := AssembleContext(chunks)
	if first != second {
		t.Error("AssembleContext is not deterministic for identical input")
	}
}

func TestAssembleContextAllEmpty(t *testing.T) {
	chunks := []store.EvidenceChunk{{}, {}, {}}
	if got := AssembleContext(chunks); got != "" {
		t.Errorf("AssembleContext(padding only) = %q, want empty", got)
	}
}

func TestBuildConversationalEmbedsQuestionAndContext(t *testing.T) {
	got := BuildConversational("O que é onboarding?", "(C1 • Onboarding) Processo de entrada.")
	if !strings.Contains(got, "O que é onboarding?") {
		t.Error("conversational prompt does not embed the question")
	}
	if !strings.Contains(got, "(C1 • Onboarding) Processo de entrada.") {
		t.Error("conversational prompt does not embed the context block")
	}
}

func TestBuildSingleShotEmbedsQuestionAndContext(t *testing.T) {
	got := BuildSingleShot("Qual o limite?", "(C1 • Limites) O limite é definido na análise.")
	if !strings.Contains(got, "Qual o limite?") || !strings.Contains(got, "(C1 • Limites)") {
		t.Error("single-shot prompt is missing question or context")
	}
}
