package retrieval

import (
	"context"
	"testing"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/rag/category"
	"rag-support-be/pkg/store"
	"rag-support-be/pkg/vectorindex"
)

type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	return []float32{0.1, 0.2, 0.3}, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

func (f *fakeEmbedder) Dimension() int { return 3 }

type fakeIndex struct {
	matches    []vectorindex.Match
	lastTopK   int
	lastFilter map[string]string
}

func (f *fakeIndex) Query(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]vectorindex.Match, error) {
	f.lastTopK = topK
	f.lastFilter = filter
	if len(f.matches) > topK {
		return f.matches[:topK], nil
	}
	return f.matches, nil
}

func (f *fakeIndex) Upsert(ctx context.Context, vectors []vectorindex.Vector) error {
	return nil
}

func TestRetrieveFiltersByCategory(t *testing.T) {
	idx := &fakeIndex{matches: []vectorindex.Match{
		{ID: "a", Score: 0.9, Metadata: map[string]string{"titulo": "Limites", "categoria": "Política de Crédito", "content": "texto"}},
	}}
	engine := NewEngine(&fakeEmbedder{}, idx, logger.NewNopLogger())

	chunks, err := engine.Retrieve(context.Background(), "qual o limite?", category.CreditPolicy, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.lastTopK != 6 {
		t.Errorf("topK = %d, want 6", idx.lastTopK)
	}
	if got := idx.lastFilter["categoria"]; got != string(category.CreditPolicy) {
		t.Errorf("filter categoria = %q, want %q", got, category.CreditPolicy)
	}
	if len(chunks) != 1 || chunks[0].Title != "Limites" {
		t.Fatalf("unexpected chunks: %+v", chunks)
	}
}

func TestRetrieveNoFilterWhenCategoryEmpty(t *testing.T) {
	idx := &fakeIndex{}
	engine := NewEngine(&fakeEmbedder{}, idx, logger.NewNopLogger())

	if _, err := engine.Retrieve(context.Background(), "pergunta", "", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.lastFilter != nil {
		t.Errorf("expected nil filter, got %v", idx.lastFilter)
	}
}

func TestRetrieveDefaultsMissingMetadata(t *testing.T) {
	idx := &fakeIndex{matches: []vectorindex.Match{
		{ID: "a", Score: 0.5, Metadata: nil},
		{ID: "b", Score: 0.4, Metadata: map[string]string{"content": "só conteúdo"}},
	}}
	engine := NewEngine(&fakeEmbedder{}, idx, logger.NewNopLogger())

	chunks, err := engine.Retrieve(context.Background(), "pergunta", category.Onboarding, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks[0].Title != "" || chunks[0].Category != "" || chunks[0].Content != "" {
		t.Errorf("nil metadata not defaulted: %+v", chunks[0])
	}
	if chunks[1].Title != "" || chunks[1].Content != "só conteúdo" {
		t.Errorf("partial metadata not defaulted: %+v", chunks[1])
	}
}

func TestRetrievePadsToMinResults(t *testing.T) {
	idx := &fakeIndex{matches: []vectorindex.Match{
		{ID: "a", Score: 0.9, Metadata: map[string]string{"content": "único"}},
	}}
	engine := NewEngine(&fakeEmbedder{}, idx, logger.NewNopLogger())

	chunks, err := engine.Retrieve(context.Background(), "pergunta", "", 5, WithMinResults(MinEvidenceForRecall))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("len = %d, want 3", len(chunks))
	}
	if chunks[0].Content != "único" {
		t.Errorf("real chunk lost: %+v", chunks[0])
	}
	for i := 1; i < 3; i++ {
		if chunks[i].Content != "" || chunks[i].ID != "" {
			t.Errorf("placeholder %d not empty: %+v", i, chunks[i])
		}
	}
}

func TestPadChunksLeavesInputAlone(t *testing.T) {
	in := []store.EvidenceChunk{{ID: "a", Content: "texto"}}
	out := PadChunks(in, 3)

	if len(out) != 3 {
		t.Fatalf("padded len = %d, want 3", len(out))
	}
	if len(in) != 1 {
		t.Errorf("input mutated, len = %d", len(in))
	}
	if out[0].ID != "a" {
		t.Errorf("first chunk changed: %+v", out[0])
	}

	if got := PadChunks(nil, 3); len(got) != 3 {
		t.Errorf("nil input padded to %d, want 3", len(got))
	}

	full := []store.EvidenceChunk{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}}
	if got := PadChunks(full, 3); len(got) != 4 {
		t.Errorf("already-full input truncated to %d", len(got))
	}
}
