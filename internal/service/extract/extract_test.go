package extract

import (
	"testing"

	"github.com/sandevgo/geobot/internal/core"
)

func TestDetectAttribute(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.Attribute
		ok    bool
	}{
		{"capital question", "Qual é a capital do Brasil?", core.AttrCapital, true},
		{"currency question", "E a moeda?", core.AttrCurrency, true},
		{"currency english synonym", "what currency?", core.AttrCurrency, true},
		{"currency informal", "quanto dinheiro vale?", core.AttrCurrency, true},
		{"language question", "Qual o idioma de Portugal?", core.AttrLanguage, true},
		{"language with diacritic", "qual a língua?", core.AttrLanguage, true},
		{"language english synonym", "language of brasil", core.AttrLanguage, true},
		{"capital beats currency", "capital e moeda", core.AttrCapital, true},
		{"no word boundary for moeda", "moedas antigas", "", false},
		{"capital substring fallback", "supercapital", core.AttrCapital, true},
		{"nothing", "bom dia", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectAttribute(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("DetectAttribute(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSubjectPhrase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"simple do", "Qual é a capital do Brasil?", "brasil", true},
		{"de with question mark", "Qual o idioma de Portugal?", "portugal", true},
		{"dos multiword", "capital dos Estados Unidos?", "estados unidos", true},
		{"terminated by comma", "do brasil, por favor", "brasil", true},
		{"terminated by period", "moeda de portugal.", "portugal", true},
		{"end of string", "fale do rio de janeiro", "rio de janeiro", true},
		{"collapses inner spaces", "do rio  de   janeiro", "rio de janeiro", true},
		{"no preposition", "E a moeda?", "", false},
		{"da inside word ignored", "a moeda antiga", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SubjectPhrase(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("SubjectPhrase(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSubjectPhraseFirstMatchWins(t *testing.T) {
	got, ok := SubjectPhrase("do brasil? e de portugal?")
	if !ok || got != "brasil" {
		t.Errorf("SubjectPhrase = (%q, %v), want (%q, true)", got, ok, "brasil")
	}
}

func TestIsFollowup(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"E a moeda?", true},
		{"e quanto custa?", true},
		{"Agora me fale de Portugal", true},
		{"sobre o idioma", true},
		{"E mais alguma coisa", true},
		{"Qual é a capital do Brasil?", false},
		{"bom dia", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsFollowup(tt.input); got != tt.want {
				t.Errorf("IsFollowup(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
