package intent

import (
	"context"
	"errors"
	"testing"

	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/llm"
	"rag-support-be/pkg/rag/category"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.reply, f.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  category.Category
	}{
		{"exact category name", "Onboarding", nil, category.Onboarding},
		{"exact with trailing newline", "Compliance\n", nil, category.Compliance},
		{"verbose reply containing category", "A pergunta pertence a Política de Crédito.", nil, category.CreditPolicy},
		{"partial reply contained in category", "segurança da informação", nil, category.InfoSecurity},
		{"gibberish falls back to default", "não sei classificar isso", nil, category.Default()},
		{"empty reply falls back to default", "", nil, category.Default()},
		{"model error falls back to default", "", errors.New("timeout"), category.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&fakeLLM{reply: tt.reply, err: tt.err}, logger.NewNopLogger())
			got := c.Classify(context.Background(), "O que é onboarding?")
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
			if !category.IsValid(got) {
				t.Errorf("Classify() returned out-of-set category %q", got)
			}
		})
	}
}
