package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/stitchdesk/stitchdesk/internal/client/termx"
)

// column pairs a header with its share of the terminal width.
type column struct {
	Header  string
	Percent float64
}

// renderTable prints rows in columns sized as percentages of the current
// terminal width.
func renderTable(w io.Writer, cols []column, rows [][]string) {
	total := termx.Width()

	widths := make([]int, len(cols))
	headers := make([]string, len(cols))
	for i, c := range cols {
		widths[i] = termx.Clamp(termx.WidthPercent(total, c.Percent), 4, total)
		headers[i] = pad(c.Header, widths[i])
	}
	fmt.Fprintln(w, strings.Join(headers, " "))

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i := range cols {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			cells[i] = pad(v, widths[i])
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

func pad(s string, width int) string {
	s = termx.Truncate(s, width)
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
