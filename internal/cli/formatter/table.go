package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Column widths come from the widest cell in each column; cells may carry
// ANSI sequences, so widths are measured with lipgloss.Width.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeRow(&b, widths, headers, func(h string) string { return StyleHeader.Render(h) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, widths, row, nil)
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeRow pads each cell to its column width. style, when set, wraps the
// raw cell text; padding always uses the unstyled width so ANSI codes do
// not skew alignment.
func writeRow(b *strings.Builder, widths []int, cells []string, style func(string) string) {
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		visible := lipgloss.Width(cell)
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			pad := widths[i] - visible
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}
