package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format pads rows to the widest cell of each column. Widths are measured in
// terminal cells, so styled and multi-byte text lines up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - lipgloss.Width(cell)
			last := c == len(row)-1
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if !last {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
			}
		}
		out[i] = b.String()
	}
	return out
}

func columnWidths(rows [][]string) []int {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}
	return widths
}
