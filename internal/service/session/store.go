package session

import (
	"sync"
	"time"

	"github.com/sandevgo/geobot/internal/core"
)

const (
	DefaultTTL         = 600 * time.Second
	DefaultMaxMessages = 10
)

// state is one conversation's short-term memory. Expiry is lazy: the state
// machine only moves from expired back to active when the session is next
// touched, never via a background sweep.
type state struct {
	mu           sync.Mutex
	subject      core.SubjectKey
	hasSubject   bool
	messages     []core.Message
	lastActivity time.Time
}

// Store holds per-conversation sessions in process memory. Each session
// carries its own lock so unrelated conversations never contend; the store
// lock only covers map access.
type Store struct {
	ttl         time.Duration
	maxMessages int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*state
}

func NewStore(ttl time.Duration, maxMessages int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &Store{
		ttl:         ttl,
		maxMessages: maxMessages,
		now:         time.Now,
		sessions:    make(map[string]*state),
	}
}

// ensure returns the session for id, creating it on first reference. The
// returned session is locked; the caller must unlock it.
func (s *Store) ensure(id string) *state {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &state{lastActivity: s.now()}
		s.sessions[id] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return sess
}

// expireLocked resets the session in place if it idled past the TTL.
// Expiry is a transparent reset, not an observable state.
func (s *Store) expireLocked(sess *state) {
	if s.now().Sub(sess.lastActivity) > s.ttl {
		sess.subject = ""
		sess.hasSubject = false
		sess.messages = nil
		sess.lastActivity = s.now()
	}
}

// Touch ensures the session exists and refreshes its activity timestamp.
func (s *Store) Touch(id string) {
	sess := s.ensure(id)
	defer sess.mu.Unlock()
	sess.lastActivity = s.now()
}

// RememberMessage appends to the bounded history, evicting the oldest
// entry at capacity.
func (s *Store) RememberMessage(id, role, text string) {
	sess := s.ensure(id)
	defer sess.mu.Unlock()
	s.expireLocked(sess)

	sess.messages = append(sess.messages, core.Message{At: s.now(), Role: role, Text: text})
	if len(sess.messages) > s.maxMessages {
		sess.messages = sess.messages[1:]
	}
	sess.lastActivity = s.now()
}

// SetSubject stores the resolved topic unconditionally. No expiry check
// here: the caller just resolved the subject from a live message.
func (s *Store) SetSubject(id string, subject core.SubjectKey) {
	sess := s.ensure(id)
	defer sess.mu.Unlock()
	sess.subject = subject
	sess.hasSubject = subject != ""
	sess.lastActivity = s.now()
}

// GetSubject returns the current topic, if any survived the TTL.
func (s *Store) GetSubject(id string) (core.SubjectKey, bool) {
	sess := s.ensure(id)
	defer sess.mu.Unlock()
	s.expireLocked(sess)
	return sess.subject, sess.hasSubject
}

// LastUserMessage returns the most recent user entry from history.
func (s *Store) LastUserMessage(id string) (string, bool) {
	sess := s.ensure(id)
	defer sess.mu.Unlock()
	s.expireLocked(sess)

	for i := len(sess.messages) - 1; i >= 0; i-- {
		if sess.messages[i].Role == core.RoleUser {
			return sess.messages[i].Text, true
		}
	}
	return "", false
}

// History returns a copy of the session's recent messages, newest last.
func (s *Store) History(id string) []core.Message {
	sess := s.ensure(id)
	defer sess.mu.Unlock()
	s.expireLocked(sess)

	out := make([]core.Message, len(sess.messages))
	copy(out, sess.messages)
	return out
}

// Clear unconditionally replaces the session with a fresh empty one.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &state{lastActivity: s.now()}
}
