package quiz

import (
	"context"

	"github.com/google/uuid"
)

// FetchFunc requests n freshly generated quiz items from the pipeline.
type FetchFunc func(ctx context.Context, n int) ([]Item, error)

// Session holds the quiz state of one page view: the active (unanswered)
// items and the accumulate-only answered list. Items move active -> answered
// exactly once and are never mutated afterward.
type Session struct {
	fetch    FetchFunc
	fallback []Item
	active   []Item
	answered []Item
}

// NewSession creates an empty session backed by the given fetch function.
func NewSession(fetch FetchFunc) *Session {
	return &Session{
		fetch:    fetch,
		fallback: FallbackItems(),
	}
}

// Start loads the initial batch of n items. On any fetch or parse failure the
// session is populated wholesale from the fallback list instead; the failure
// is not retried.
func (s *Session) Start(ctx context.Context, n int) {
	items, err := s.fetch(ctx, n)
	if err != nil {
		if len(s.active) == 0 {
			s.active = append(s.active, s.fallback...)
		}
		return
	}
	s.active = append(s.active, items...)
}

// Answer moves the item with the given id from active to answered and
// requests exactly one replacement, appended at the end of the active set.
// If the replacement fetch fails and the fallback list still has an unused
// entry, that entry is appended (with a fresh id) instead; otherwise the
// active set shrinks by one. Unknown ids are ignored: a slow replacement can
// arrive for an item the session no longer tracks.
func (s *Session) Answer(ctx context.Context, id string) bool {
	idx := -1
	for i := range s.active {
		if s.active[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	answeredCount := len(s.answered)
	s.answered = append(s.answered, s.active[idx])
	s.active = append(s.active[:idx], s.active[idx+1:]...)

	items, err := s.fetch(ctx, 1)
	if err != nil || len(items) == 0 {
		if answeredCount < len(s.fallback) {
			fb := s.fallback[answeredCount%len(s.fallback)]
			fb.ID = uuid.NewString()
			s.active = append(s.active, fb)
		}
		return true
	}
	s.active = append(s.active, items...)
	return true
}

// Active returns the unanswered items in insertion order.
func (s *Session) Active() []Item { return s.active }

// Answered returns the items answered so far.
func (s *Session) Answered() []Item { return s.answered }
