package listkit

import (
	"fmt"
	"sort"
)

// SortState tracks the active sort column and direction for a table.
// Clicking the active column flips the direction; clicking a different
// column resets to ascending on that column.
type SortState struct {
	Column string
	Desc   bool
}

// Click registers a column header click and updates the state.
func (s *SortState) Click(column string) {
	if s.Column == column {
		s.Desc = !s.Desc
		return
	}
	s.Column = column
	s.Desc = false
}

// Apply sorts items in place for the state's direction. less must define the
// ascending order of the state's column. The sort is stable: equal values
// preserve their relative order.
func Apply[T any](s SortState, items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if s.Desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// NaturalLess orders two values by their natural ordering: numerically when
// both are numbers, lexicographically on their string forms otherwise.
func NaturalLess(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
