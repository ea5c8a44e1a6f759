package category

import "testing"

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(all))
	}
	if all[0] != ProductsServices || all[4] != Compliance {
		t.Errorf("category order changed: %v", all)
	}
}

func TestIsValid(t *testing.T) {
	for _, c := range All() {
		if !IsValid(c) {
			t.Errorf("IsValid(%q) = false, want true", c)
		}
	}
	if IsValid("Finanças Pessoais") {
		t.Error("IsValid accepted an out-of-set category")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Category
		wantHit bool
	}{
		{"exact", "Onboarding", Onboarding, true},
		{"exact with whitespace", "  Compliance \n", Compliance, true},
		{"reply contains category", "A categoria é: política de crédito.", CreditPolicy, true},
		{"reply contained in category", "segurança", InfoSecurity, true},
		{"case insensitive", "ONBOARDING", Onboarding, true},
		{"no match", "quantum computing", "", false},
		{"empty", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := Match(tt.raw)
			if hit != tt.wantHit {
				t.Fatalf("Match(%q) hit = %v, want %v", tt.raw, hit, tt.wantHit)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
