package listkit

import (
	"strings"
	"sync"
	"time"
)

// Search pairs a raw query with a debounced one. The debounced query settles
// on the latest raw value after the quiet period; intermediate values never
// surface once settled.
type Search struct {
	deb      *Debouncer
	mu       sync.RWMutex
	raw      string
	settled  string
	onChange func(q string)
}

// NewSearch builds a Search with the given quiet period (<=0 means
// DefaultDebounce). onChange, when non-nil, fires each time the debounced
// query settles.
func NewSearch(delay time.Duration, onChange func(q string)) *Search {
	return &Search{deb: NewDebouncer(delay), onChange: onChange}
}

// Set updates the raw query immediately and schedules the debounced update,
// cancelling any pending one.
func (s *Search) Set(q string) {
	s.mu.Lock()
	s.raw = q
	s.mu.Unlock()

	s.deb.Do(func() {
		s.mu.Lock()
		s.settled = q
		cb := s.onChange
		s.mu.Unlock()
		if cb != nil {
			cb(q)
		}
	})
}

// Raw returns the latest raw query.
func (s *Search) Raw() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

// Query returns the settled (debounced) query.
func (s *Search) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settled
}

// Stop cancels any pending debounced update.
func (s *Search) Stop() {
	s.deb.Stop()
}

// MatchQuery reports whether any of the fields contains q as a
// case-insensitive substring. An empty or whitespace-only query matches
// everything.
func MatchQuery(q string, fields ...string) bool {
	q = strings.TrimSpace(strings.ToLower(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterByQuery returns the items whose configured search fields match q.
// With an empty query the full slice is returned unfiltered.
func FilterByQuery[T any](items []T, q string, fields func(T) []string) []T {
	if strings.TrimSpace(q) == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if MatchQuery(q, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}
