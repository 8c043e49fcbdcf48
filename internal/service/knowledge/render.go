package knowledge

import (
	"fmt"

	"github.com/sandevgo/geobot/internal/core"
)

// Render produces the final answer sentence for a resolved (subject,
// attribute) pair. Pure; callers may invoke it twice for the same pair and
// must get the same text.
func (b *Base) Render(key core.SubjectKey, attr core.Attribute) (string, bool) {
	entry, ok := b.entries[key]
	if !ok {
		return "", false
	}

	value, ok := entry.Value(attr)
	if !ok {
		return "", false
	}

	switch attr {
	case core.AttrCapital:
		return fmt.Sprintf("A capital de %s é %s.", entry.Name, value), true
	case core.AttrCurrency:
		return fmt.Sprintf("Falando de %s, a moeda é %s.", entry.Name, value), true
	case core.AttrLanguage:
		return fmt.Sprintf("Em %s, o idioma predominante é %s.", entry.Name, value), true
	}
	return "", false
}
