package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "CAPITAL", "capital"},
		{"trims", "  moeda \n", "moeda"},
		{"strips diacritics", "CAPITÁL", "capital"},
		{"portuguese words", "São Paulo", "sao paulo"},
		{"cedilla keeps base letter", "informação", "informacao"},
		{"empty", "", ""},
		{"already canonical", "brasil", "brasil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"CAPITÁL", "São Paulo", "e a moeda?", ""}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, twice, once)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rio  de   janeiro", "rio de janeiro"},
		{" estados\tunidos ", "estados unidos"},
		{"brasil", "brasil"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CollapseSpaces(tt.input); got != tt.want {
			t.Errorf("CollapseSpaces(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
