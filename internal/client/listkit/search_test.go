package listkit

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_DebounceSettlesOnLastValue(t *testing.T) {
	var settled atomic.Int32
	s := NewSearch(30*time.Millisecond, func(q string) { settled.Add(1) })
	defer s.Stop()

	// changes arrive faster than the quiet period
	s.Set("a")
	time.Sleep(5 * time.Millisecond)
	s.Set("ab")
	time.Sleep(5 * time.Millisecond)
	s.Set("abc")

	assert.Equal(t, "abc", s.Raw())
	assert.Empty(t, s.Query(), "debounced query must not update before the quiet period")

	require.Eventually(t, func() bool { return s.Query() == "abc" },
		500*time.Millisecond, 5*time.Millisecond)

	// earlier values were cancelled, so onChange fired exactly once
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), settled.Load())
	assert.Equal(t, "abc", s.Query())
}

func TestSearch_StopCancelsPending(t *testing.T) {
	s := NewSearch(20*time.Millisecond, nil)

	s.Set("pending")
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, s.Query())
}

func TestMatchQuery(t *testing.T) {
	tests := []struct {
		name   string
		q      string
		fields []string
		want   bool
	}{
		{name: "case-insensitive substring", q: "nike", fields: []string{"Nike Hoodie"}, want: true},
		{name: "no match", q: "nike", fields: []string{"Adidas Shirt"}, want: false},
		{name: "any field may match", q: "ops@", fields: []string{"Acme", "ops@acme.test"}, want: true},
		{name: "empty query matches", q: "", fields: []string{"anything"}, want: true},
		{name: "whitespace-only query matches", q: "   ", fields: []string{"anything"}, want: true},
		{name: "empty fields do not match", q: "x", fields: nil, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchQuery(tt.q, tt.fields...))
		})
	}
}

func TestFilterByQuery(t *testing.T) {
	type product struct{ Name string }
	data := []product{{Name: "Nike Hoodie"}, {Name: "Adidas Shirt"}}
	fields := func(p product) []string { return []string{p.Name} }

	got := FilterByQuery(data, "nike", fields)
	require.Len(t, got, 1)
	assert.Equal(t, "Nike Hoodie", got[0].Name)

	assert.Equal(t, data, FilterByQuery(data, "", fields), "empty query returns the full list")
	assert.Empty(t, FilterByQuery(data, "puma", fields))
}
