package listkit

import "strings"

// FilterAll is the sentinel value meaning "no constraint for this field".
// An empty string or a nil expected value means the same.
const FilterAll = "all"

// FilterSet maps field names to expected values. A record matches the whole
// set only if it matches every non-sentinel entry: string fields by
// case-insensitive substring containment, all other types by strict
// equality.
type FilterSet map[string]any

func isSentinel(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == "" || strings.EqualFold(s, FilterAll)
	}
	return false
}

// Matches evaluates the set against a record exposed through get.
func (f FilterSet) Matches(get func(field string) any) bool {
	for field, want := range f {
		if isSentinel(want) {
			continue
		}
		got := get(field)
		ws, wantIsStr := want.(string)
		gs, gotIsStr := got.(string)
		if wantIsStr && gotIsStr {
			if !strings.Contains(strings.ToLower(gs), strings.ToLower(ws)) {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

// ApplyFilters returns the items matching every non-sentinel filter entry.
func ApplyFilters[T any](items []T, f FilterSet, get func(item T, field string) any) []T {
	if len(f) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		it := it
		if f.Matches(func(field string) any { return get(it, field) }) {
			out = append(out, it)
		}
	}
	return out
}
