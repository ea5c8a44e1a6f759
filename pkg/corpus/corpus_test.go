package corpus

import (
	"context"
	"strings"
	"testing"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/vectorindex"
)

func TestParseDocument(t *testing.T) {
	raw := `Título: Política de Limites
Categoria: Política de Crédito

O limite inicial é definido por análise.
Lorem ipsum dolor sit amet.
Aumentos são reavaliados a cada ciclo.`

	doc := ParseDocument(raw)

	if doc.Title != "Política de Limites" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Category != "Política de Crédito" {
		t.Errorf("category = %q", doc.Category)
	}
	if strings.Contains(doc.Body, "Lorem ipsum") {
		t.Errorf("filler line kept: %q", doc.Body)
	}
	if !strings.Contains(doc.Body, "O limite inicial é definido por análise.") ||
		!strings.Contains(doc.Body, "Aumentos são reavaliados a cada ciclo.") {
		t.Errorf("body = %q", doc.Body)
	}
}

func TestParseDocumentLowercaseHeader(t *testing.T) {
	doc := ParseDocument("titulo: Abertura de Conta\ncategoria: Onboarding\nEnvie um documento.")
	if doc.Title != "Abertura de Conta" || doc.Category != "Onboarding" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("Veja  em https://exemplo.com.br: o CRÉDITO é *pré-aprovado*!")

	if strings.Contains(got, "http") {
		t.Errorf("url kept: %q", got)
	}
	if got != strings.ToLower(got) {
		t.Errorf("not lowercased: %q", got)
	}
	if strings.ContainsAny(got, "éá*-") {
		t.Errorf("accents or symbols kept: %q", got)
	}
	if !strings.Contains(got, "credito") {
		t.Errorf("accent folding lost the word: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestPostprocessDenoised(t *testing.T) {
	in := "Texto filtrado: \"\"\" O cartão não tem anuidade.\nA conta é gratuita. \"\"\""
	got := PostprocessDenoised(in)

	if strings.Contains(got, "Texto filtrado") || strings.Contains(got, `"`) {
		t.Errorf("scaffolding kept: %q", got)
	}
	if strings.Contains(got, "\n") {
		t.Errorf("newline kept: %q", got)
	}
	if !strings.Contains(got, "O cartão não tem anuidade.") {
		t.Errorf("content lost: %q", got)
	}
}

func TestPostprocessDropsEchoedCategory(t *testing.T) {
	got := PostprocessDenoised("Conteúdo útil aqui. Categoria: Compliance")
	if strings.Contains(got, "Compliance") {
		t.Errorf("echoed category kept: %q", got)
	}
}

func TestPostprocessKeepsNumericSlashes(t *testing.T) {
	got := PostprocessDenoised("O prazo é 30/60 dias e o caminho a/b some.")
	if !strings.Contains(got, "30/60") {
		t.Errorf("numeric slash removed: %q", got)
	}
	if strings.Contains(got, "a/b") {
		t.Errorf("stray slash kept: %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("primeira frase. segunda frase! terceira frase? ultima")
	want := []string{"primeira frase.", "segunda frase!", "terceira frase?", "ultima"}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChunkTextPacksSentences(t *testing.T) {
	text := strings.Repeat("esta frase ocupa algum espaco no orcamento. ", 40)

	chunks := ChunkText(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if EstimateTokens(c) > 100 {
			t.Errorf("chunk %d over budget: %d tokens", i, EstimateTokens(c))
		}
		if !strings.HasSuffix(c, ".") {
			t.Errorf("chunk %d cut mid-sentence: %q", i, c[len(c)-20:])
		}
	}
}

func TestChunkTextSplitsOversizeSentence(t *testing.T) {
	sentence := strings.Repeat("palavra ", 300) // no sentence boundary
	chunks := ChunkText(sentence, 50)
	if len(chunks) < 2 {
		t.Fatalf("oversize sentence not split: %d chunks", len(chunks))
	}
}

type countingIndex struct {
	batches [][]vectorindex.Vector
}

func (c *countingIndex) Query(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]vectorindex.Match, error) {
	return nil, nil
}

func (c *countingIndex) Upsert(ctx context.Context, vectors []vectorindex.Vector) error {
	c.batches = append(c.batches, vectors)
	return nil
}

type unitEmbedder struct{}

func (unitEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1}, nil
}

func (unitEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1}
	}
	return out, nil
}

func (unitEmbedder) Dimension() int { return 1 }

func TestIndexChunksBatches(t *testing.T) {
	idx := &countingIndex{}
	ing := NewIngestor(unitEmbedder{}, idx, nil, logger.NewNopLogger())

	chunks := make([]Chunk, 120)
	for i := range chunks {
		chunks[i] = Chunk{ID: "id", Title: "t", Category: "c", Content: "conteudo"}
	}

	n, err := ing.IndexChunks(context.Background(), chunks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 120 {
		t.Errorf("indexed = %d, want 120", n)
	}
	if len(idx.batches) != 3 {
		t.Fatalf("batches = %d, want 3", len(idx.batches))
	}
	if len(idx.batches[0]) != 50 || len(idx.batches[2]) != 20 {
		t.Errorf("batch sizes = %d/%d/%d", len(idx.batches[0]), len(idx.batches[1]), len(idx.batches[2]))
	}
	md := idx.batches[0][0].Metadata
	if md["titulo"] != "t" || md["categoria"] != "c" || md["content"] != "conteudo" {
		t.Errorf("metadata = %v", md)
	}
}

func TestChunkDocumentEmptyBody(t *testing.T) {
	ing := NewIngestor(unitEmbedder{}, &countingIndex{}, nil, logger.NewNopLogger())
	if got := ing.ChunkDocument(context.Background(), "Título: vazio\nCategoria: Compliance\n"); got != nil {
		t.Errorf("expected no chunks, got %v", got)
	}
}
