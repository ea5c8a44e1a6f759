package category

import "strings"

// Category is a topical label used to route classification and filter retrieval.
// The set is fixed for the corpus and never changes at runtime.
type Category string

const (
	ProductsServices Category = "Produtos e Serviços"
	CreditPolicy     Category = "Política de Crédito"
	Onboarding       Category = "Onboarding"
	InfoSecurity     Category = "Segurança da Informação"
	Compliance       Category = "Compliance"
)

// All returns the category set in its canonical order.
func All() []Category {
	return []Category{
		ProductsServices,
		CreditPolicy,
		Onboarding,
		InfoSecurity,
		Compliance,
	}
}

// Default is returned whenever classification cannot produce an in-set value.
func Default() Category {
	return ProductsServices
}

// IsValid reports whether c is a member of the fixed set.
func IsValid(c Category) bool {
	for _, known := range All() {
		if c == known {
			return true
		}
	}
	return false
}

// Match resolves a raw model reply to an in-set category.
// Resolution order: exact match, then case-insensitive substring match in
// either direction. The boolean is false when nothing matched.
func Match(raw string) (Category, bool) {
	trimmed := strings.TrimSpace(raw)

	for _, c := range All() {
		if trimmed == string(c) {
			return c, true
		}
	}

	lowered := strings.ToLower(trimmed)
	if lowered == "" {
		return "", false
	}
	for _, c := range All() {
		catLower := strings.ToLower(string(c))
		if strings.Contains(lowered, catLower) || strings.Contains(catLower, lowered) {
			return c, true
		}
	}

	return "", false
}
