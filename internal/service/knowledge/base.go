package knowledge

import (
	"github.com/sandevgo/geobot/internal/core"
	"github.com/sandevgo/geobot/pkg/textnorm"
)

// Entry is one immutable knowledge-base record. The dataset is fixed at
// startup; there is no runtime mutation.
type Entry struct {
	Name     string
	Capital  string
	Currency string
	Language string
}

// Value returns the entry's value for the given attribute.
func (e Entry) Value(attr core.Attribute) (string, bool) {
	switch attr {
	case core.AttrCapital:
		return e.Capital, e.Capital != ""
	case core.AttrCurrency:
		return e.Currency, e.Currency != ""
	case core.AttrLanguage:
		return e.Language, e.Language != ""
	default:
		return "", false
	}
}

type Base struct {
	entries map[core.SubjectKey]Entry
	aliases map[string]string
}

// NewBase builds the demo dataset of countries and cities.
func NewBase() *Base {
	return &Base{
		entries: map[core.SubjectKey]Entry{
			"brasil": {
				Name:     "Brasil",
				Capital:  "Brasília",
				Currency: "real (BRL)",
				Language: "português",
			},
			"portugal": {
				Name:     "Portugal",
				Capital:  "Lisboa",
				Currency: "euro (EUR)",
				Language: "português",
			},
			"estados unidos": {
				Name:     "Estados Unidos",
				Capital:  "Washington, D.C.",
				Currency: "dólar americano (USD)",
				Language: "inglês",
			},
			"sao paulo": {
				Name:     "São Paulo",
				Capital:  "São Paulo",
				Currency: "real (BRL)",
				Language: "português",
			},
			"rio de janeiro": {
				Name:     "Rio de Janeiro",
				Capital:  "Rio de Janeiro",
				Currency: "real (BRL)",
				Language: "português",
			},
		},
		aliases: map[string]string{
			"eua":                       "estados unidos",
			"estados unidos da america": "estados unidos",
		},
	}
}

// ResolveSubject maps free text to a knowledge-base key: normalize, apply
// the alias table, then exact lookup, retrying once with whitespace runs
// collapsed. No fuzzy matching.
func (b *Base) ResolveSubject(raw string) (core.SubjectKey, bool) {
	if raw == "" {
		return "", false
	}

	n := textnorm.Normalize(raw)
	if alias, ok := b.aliases[n]; ok {
		n = alias
	}
	if _, ok := b.entries[core.SubjectKey(n)]; ok {
		return core.SubjectKey(n), true
	}

	n2 := textnorm.CollapseSpaces(n)
	if _, ok := b.entries[core.SubjectKey(n2)]; ok {
		return core.SubjectKey(n2), true
	}
	return "", false
}

// Entry returns the record for a resolved key.
func (b *Base) Entry(key core.SubjectKey) (Entry, bool) {
	e, ok := b.entries[key]
	return e, ok
}
