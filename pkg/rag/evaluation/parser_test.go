package evaluation

import (
	"reflect"
	"testing"
)

func TestDecodeStrictJSON(t *testing.T) {
	reply := `{
		"precisao": 9,
		"cobertura": 7,
		"recall3": 8,
		"justificativa": "  Resposta bem fundamentada.  ",
		"evidencias": [
			{"trecho_resposta": "sem anuidade", "status": "suportado", "chunks_citados": ["C1"], "evidencia": "O cartão não tem anuidade."}
		]
	}`
	chunks := []string{"O cartão não tem anuidade.", "", ""}

	result := Decode(reply, chunks)

	if result.Precision != 9 || result.Coverage != 7 || result.RecallAt3 != 8 {
		t.Errorf("scores = %d/%d/%d", result.Precision, result.Coverage, result.RecallAt3)
	}
	if result.Justification != "Resposta bem fundamentada." {
		t.Errorf("justification = %q", result.Justification)
	}
	if len(result.Evidence) != 1 || result.Evidence[0].Status != StatusSupported {
		t.Errorf("evidence = %+v", result.Evidence)
	}
	if !reflect.DeepEqual(result.SourceChunks, chunks) {
		t.Errorf("source chunks = %v", result.SourceChunks)
	}
}

func TestDecodeStrictDefaultsMissingFields(t *testing.T) {
	result := Decode(`{"precisao": 5}`, []string{"a", "b", "c"})

	if result.Precision != 5 {
		t.Errorf("precision = %d", result.Precision)
	}
	if result.Coverage != 0 || result.RecallAt3 != 0 {
		t.Errorf("absent scores not zeroed: %d/%d", result.Coverage, result.RecallAt3)
	}
	if result.Justification != "" {
		t.Errorf("justification = %q", result.Justification)
	}
}

func TestDecodeFallbackOnInvalidJSON(t *testing.T) {
	reply := "Precisão: 8, Cobertura: 6, Recall: 5, justificativa: ok"

	result := Decode(reply, []string{"", "", ""})

	if result.Precision != 8 || result.Coverage != 6 || result.RecallAt3 != 5 {
		t.Errorf("scores = %d/%d/%d, want 8/6/5", result.Precision, result.Coverage, result.RecallAt3)
	}
	if result.Justification != "ok" {
		t.Errorf("justification = %q, want %q", result.Justification, "ok")
	}
	if len(result.Evidence) != 0 {
		t.Errorf("fallback evidence should be empty, got %+v", result.Evidence)
	}
}

func TestDecodeFallbackCaseAndAccentInsensitive(t *testing.T) {
	reply := "PRECISAO foi 7. cobertura chegou a 4. o recall ficou em 3.\nJustificativa: cobre o essencial"

	result := Decode(reply, []string{"", "", ""})

	if result.Precision != 7 || result.Coverage != 4 || result.RecallAt3 != 3 {
		t.Errorf("scores = %d/%d/%d, want 7/4/3", result.Precision, result.Coverage, result.RecallAt3)
	}
	if result.Justification != "cobre o essencial" {
		t.Errorf("justification = %q", result.Justification)
	}
}

func TestDecodeFallbackDefaultsToZero(t *testing.T) {
	result := Decode("o modelo devolveu qualquer coisa", []string{"", "", ""})

	if result.Precision != 0 || result.Coverage != 0 || result.RecallAt3 != 0 {
		t.Errorf("scores = %d/%d/%d, want all 0", result.Precision, result.Coverage, result.RecallAt3)
	}
	if result.Justification != "" {
		t.Errorf("justification = %q, want empty", result.Justification)
	}
}

func TestDecodeClampsOutOfRangeScores(t *testing.T) {
	result := Decode(`{"precisao": 15, "cobertura": -2, "recall3": 10}`, []string{"", "", ""})

	if result.Precision != 10 {
		t.Errorf("precision = %d, want clamped 10", result.Precision)
	}
	if result.Coverage != 0 {
		t.Errorf("coverage = %d, want clamped 0", result.Coverage)
	}
	if result.RecallAt3 != 10 {
		t.Errorf("recall3 = %d, want 10", result.RecallAt3)
	}

	fallback := Decode("Precisão: 99, Cobertura: 6, Recall: 5", []string{"", "", ""})
	if fallback.Precision != 10 {
		t.Errorf("fallback precision = %d, want clamped 10", fallback.Precision)
	}
}

func TestDecodeAcceptsFractionalScores(t *testing.T) {
	result := Decode(`{"precisao": 8.0, "cobertura": 6.7, "recall3": 5}`, []string{"", "", ""})

	if result.Precision != 8 || result.Coverage != 6 || result.RecallAt3 != 5 {
		t.Errorf("scores = %d/%d/%d, want 8/6/5", result.Precision, result.Coverage, result.RecallAt3)
	}
}
