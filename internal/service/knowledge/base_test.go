package knowledge

import (
	"testing"

	"github.com/sandevgo/geobot/internal/core"
)

func TestResolveSubject(t *testing.T) {
	base := NewBase()

	tests := []struct {
		name  string
		input string
		want  core.SubjectKey
		ok    bool
	}{
		{"exact key", "brasil", "brasil", true},
		{"case and diacritics", "BRASÍL", "brasil", true},
		{"alias uppercase", "EUA", "estados unidos", true},
		{"long alias", "Estados Unidos da América", "estados unidos", true},
		{"accented city", "São Paulo", "sao paulo", true},
		{"whitespace collapse", "rio  de   janeiro", "rio de janeiro", true},
		{"unknown subject", "argentina", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := base.ResolveSubject(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ResolveSubject(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveSubjectAliasEquivalence(t *testing.T) {
	base := NewBase()

	viaAlias, ok1 := base.ResolveSubject("EUA")
	direct, ok2 := base.ResolveSubject("estados unidos")
	if !ok1 || !ok2 {
		t.Fatal("both lookups should resolve")
	}
	if viaAlias != direct {
		t.Errorf("alias mismatch: %q != %q", viaAlias, direct)
	}
}

func TestRender(t *testing.T) {
	base := NewBase()

	tests := []struct {
		name string
		key  core.SubjectKey
		attr core.Attribute
		want string
		ok   bool
	}{
		{"capital", "brasil", core.AttrCapital, "A capital de Brasil é Brasília.", true},
		{"currency", "brasil", core.AttrCurrency, "Falando de Brasil, a moeda é real (BRL).", true},
		{"language", "portugal", core.AttrLanguage, "Em Portugal, o idioma predominante é português.", true},
		{"unknown subject", "argentina", core.AttrCapital, "", false},
		{"unknown attribute", "brasil", core.Attribute("populacao"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := base.Render(tt.key, tt.attr)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Render(%q, %q) = (%q, %v), want (%q, %v)", tt.key, tt.attr, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	base := NewBase()

	first, ok := base.Render("brasil", core.AttrCurrency)
	if !ok {
		t.Fatal("render should succeed")
	}
	second, ok := base.Render("brasil", core.AttrCurrency)
	if !ok || first != second {
		t.Errorf("repeated render differs: %q != %q", first, second)
	}
}
