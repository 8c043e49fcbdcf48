package extract

import (
	"regexp"
	"strings"

	"github.com/sandevgo/geobot/internal/core"
	"github.com/sandevgo/geobot/pkg/textnorm"
)

// attrSynonyms is an ordered table: first attribute with a matching synonym
// wins, so the order itself is part of the contract.
var attrSynonyms = []struct {
	attr  core.Attribute
	words []string
}{
	{core.AttrCapital, []string{"capital"}},
	{core.AttrCurrency, []string{"moeda", "currency", "dinheiro"}},
	{core.AttrLanguage, []string{"idioma", "lingua", "language"}},
}

var wordPatterns = map[string]*regexp.Regexp{}

// subjectPattern captures the phrase after a Portuguese possessive
// preposition, up to punctuation or end of text.
var subjectPattern = regexp.MustCompile(`\b(dos|das|do|da|de)\s+([\w\s.\-]+?)(\?|!|\.|,|$)`)

// followupStarters marks messages that continue the previous topic without
// naming it.
var followupStarters = []string{
	"e ", "e a", "e o", "e os", "e as",
	"e de", "e do", "e da", "e dos", "e das",
	"agora", "sobre ", "e quanto", "e mais",
}

func init() {
	for _, entry := range attrSynonyms {
		for _, w := range entry.words {
			wordPatterns[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
		}
	}
}

// DetectAttribute finds the requested fact kind by whole-word synonym
// matching. As a last resort the bare substring "capital" counts, so
// glued forms like "capital?" still resolve.
func DetectAttribute(text string) (core.Attribute, bool) {
	t := textnorm.Normalize(text)
	for _, entry := range attrSynonyms {
		for _, w := range entry.words {
			if wordPatterns[w].MatchString(t) {
				return entry.attr, true
			}
		}
	}
	if strings.Contains(t, "capital") {
		return core.AttrCapital, true
	}
	return "", false
}

// SubjectPhrase extracts the raw subject phrase ("do Brasil" -> "brasil").
// Only the first preposition match is used; the caller still has to resolve
// the phrase against the knowledge base.
func SubjectPhrase(text string) (string, bool) {
	t := textnorm.Normalize(text)
	m := subjectPattern.FindStringSubmatch(t)
	if m == nil {
		return "", false
	}
	subj := textnorm.CollapseSpaces(strings.TrimSpace(m[2]))
	if subj == "" {
		return "", false
	}
	return subj, true
}

// IsFollowup reports whether the message looks like a continuation of the
// previous topic.
func IsFollowup(text string) bool {
	t := textnorm.Normalize(text)
	for _, s := range followupStarters {
		if strings.HasPrefix(t, s) {
			return true
		}
	}
	return false
}
