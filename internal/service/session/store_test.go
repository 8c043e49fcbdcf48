package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/geobot/internal/core"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(ttl time.Duration, maxMessages int) (*Store, *fakeClock) {
	clock := newFakeClock()
	s := NewStore(ttl, maxMessages)
	s.now = clock.Now
	return s, clock
}

func TestSubjectRoundTrip(t *testing.T) {
	s, _ := newTestStore(DefaultTTL, DefaultMaxMessages)

	if _, ok := s.GetSubject("chat-1"); ok {
		t.Fatal("fresh session should have no subject")
	}

	s.SetSubject("chat-1", "brasil")
	got, ok := s.GetSubject("chat-1")
	if !ok || got != core.SubjectKey("brasil") {
		t.Errorf("GetSubject = (%q, %v), want (brasil, true)", got, ok)
	}

	// Different conversation is untouched.
	if _, ok := s.GetSubject("chat-2"); ok {
		t.Error("other conversation should not see the subject")
	}
}

func TestExpiryBoundary(t *testing.T) {
	s, clock := newTestStore(600*time.Second, DefaultMaxMessages)

	s.SetSubject("chat-1", "brasil")
	s.RememberMessage("chat-1", core.RoleUser, "qual a capital do brasil?")

	clock.Advance(599 * time.Second)
	if got, ok := s.GetSubject("chat-1"); !ok || got != "brasil" {
		t.Errorf("at 599s subject should survive, got (%q, %v)", got, ok)
	}

	// Reads do not refresh activity; push well past the TTL.
	clock.Advance(601 * time.Second)
	if _, ok := s.GetSubject("chat-1"); ok {
		t.Error("at 601s idle the subject should be gone")
	}
	if h := s.History("chat-1"); len(h) != 0 {
		t.Errorf("expired session should have empty history, got %d entries", len(h))
	}
}

func TestExpiryIsTransparentReset(t *testing.T) {
	s, clock := newTestStore(600*time.Second, DefaultMaxMessages)

	s.SetSubject("chat-1", "portugal")
	clock.Advance(601 * time.Second)

	// First access after expiry already sees a fresh session and may
	// write to it immediately.
	s.RememberMessage("chat-1", core.RoleUser, "oi")
	if h := s.History("chat-1"); len(h) != 1 {
		t.Errorf("expected 1 message after reset, got %d", len(h))
	}
	if _, ok := s.GetSubject("chat-1"); ok {
		t.Error("subject should not survive the reset")
	}
}

func TestHistoryBound(t *testing.T) {
	const max = 5
	s, _ := newTestStore(DefaultTTL, max)

	for i := 0; i < max+1; i++ {
		s.RememberMessage("chat-1", core.RoleUser, fmt.Sprintf("msg-%d", i))
	}

	h := s.History("chat-1")
	if len(h) != max {
		t.Fatalf("history length = %d, want %d", len(h), max)
	}
	if h[0].Text != "msg-1" {
		t.Errorf("oldest entry should be evicted FIFO, first is %q", h[0].Text)
	}
	if h[len(h)-1].Text != fmt.Sprintf("msg-%d", max) {
		t.Errorf("newest entry missing, last is %q", h[len(h)-1].Text)
	}
}

func TestLastUserMessage(t *testing.T) {
	s, _ := newTestStore(DefaultTTL, DefaultMaxMessages)

	if _, ok := s.LastUserMessage("chat-1"); ok {
		t.Fatal("empty history should yield no user message")
	}

	s.RememberMessage("chat-1", core.RoleUser, "primeira")
	s.RememberMessage("chat-1", core.RoleAssistant, "resposta")
	s.RememberMessage("chat-1", core.RoleUser, "segunda")
	s.RememberMessage("chat-1", core.RoleAssistant, "outra resposta")

	got, ok := s.LastUserMessage("chat-1")
	if !ok || got != "segunda" {
		t.Errorf("LastUserMessage = (%q, %v), want (segunda, true)", got, ok)
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(DefaultTTL, DefaultMaxMessages)

	s.SetSubject("chat-1", "brasil")
	s.RememberMessage("chat-1", core.RoleUser, "oi")
	s.Clear("chat-1")

	if _, ok := s.GetSubject("chat-1"); ok {
		t.Error("subject should be gone after Clear")
	}
	if h := s.History("chat-1"); len(h) != 0 {
		t.Errorf("history should be empty after Clear, got %d", len(h))
	}
}

func TestConcurrentConversationsAreIsolated(t *testing.T) {
	s, _ := newTestStore(DefaultTTL, DefaultMaxMessages)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("chat-%d", i)
			key := core.SubjectKey(fmt.Sprintf("subject-%d", i))
			for j := 0; j < 100; j++ {
				s.SetSubject(id, key)
				s.RememberMessage(id, core.RoleUser, "msg")
				if got, ok := s.GetSubject(id); !ok || got != key {
					t.Errorf("conversation %s saw subject %q", id, got)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
