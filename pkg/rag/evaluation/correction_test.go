package evaluation

import (
	"strings"
	"testing"
)

func TestCorroborationAppendsWhenBothSidesMention(t *testing.T) {
	result := &Result{Justification: "A resposta cita os bureaus mas sem detalhar."}
	chunks := []string{"A consulta usa bureaus externos de crédito.", "", ""}

	ApplyCorroboration(result, chunks)

	if !strings.HasSuffix(result.Justification, "Evidência confirmada nos chunks sobre 'bureaus externos'.") {
		t.Errorf("clause not appended: %q", result.Justification)
	}
}

func TestCorroborationSkipsWithoutTriggerInChunks(t *testing.T) {
	result := &Result{Justification: "A resposta cita os bureaus."}
	before := result.Justification

	ApplyCorroboration(result, []string{"Nada relacionado aqui.", "", ""})

	if result.Justification != before {
		t.Errorf("justification changed: %q", result.Justification)
	}
}

func TestCorroborationSkipsWithoutKeywordInJustification(t *testing.T) {
	result := &Result{Justification: "A resposta está correta."}
	before := result.Justification

	ApplyCorroboration(result, []string{"A consulta usa bureaus externos.", "", ""})

	if result.Justification != before {
		t.Errorf("justification changed: %q", result.Justification)
	}
}

func TestCorroborationIsCaseInsensitive(t *testing.T) {
	result := &Result{Justification: "Menciona os BUREAUS de crédito."}

	ApplyCorroboration(result, []string{"Consulta a Bureaus Externos autorizada.", "", ""})

	if !strings.Contains(result.Justification, "Evidência confirmada") {
		t.Errorf("clause not appended: %q", result.Justification)
	}
}
