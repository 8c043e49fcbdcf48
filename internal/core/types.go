package core

import "time"

const (
	BotName       = "GeoBot"
	BotVersion    = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/geobot"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Attribute is a fact kind the bot can answer about a subject. The zero
// value means "no attribute detected".
type Attribute string

const (
	AttrCapital  Attribute = "capital"
	AttrCurrency Attribute = "moeda"
	AttrLanguage Attribute = "idioma"
)

// SubjectKey is a normalized knowledge-base key. It is only produced by
// knowledge.Base resolution, never constructed from raw user text.
type SubjectKey string

// Message is one history entry of a session.
type Message struct {
	At   time.Time
	Role string
	Text string
}
