// Package termx maps logical size units onto terminal cells, so table
// layouts scale with the window instead of being hardcoded column counts.
package termx

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the output is not a terminal (piped output,
// tests).
const DefaultWidth = 80

// getSize is a test seam for term.GetSize.
var getSize = term.GetSize

// Width returns the current terminal width in cells, or DefaultWidth when
// stdout is not a terminal.
func Width() int {
	w, _, err := getSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// WidthPercent converts a percentage of the total width to a cell count,
// never below 1.
func WidthPercent(total int, percent float64) int {
	if total <= 0 {
		total = DefaultWidth
	}
	n := int(float64(total) * percent / 100.0)
	if n < 1 {
		n = 1
	}
	return n
}

// Clamp bounds n to [min, max].
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Truncate shortens s to at most width cells, appending "…" when cut.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
