package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoData is the fixed empty-state placeholder shown instead of a table.
const NoData = "No data yet."

const columnGap = 2

// Table renders rows as a display grid. The column set is exactly the key
// set of the first row, in that row's order; later rows are laid out against
// it, with missing fields blank and extra fields dropped. Empty input yields
// the NoData placeholder.
func Table(rows []Row) string {
	if len(rows) == 0 {
		return mutedStyle.Render(NoData)
	}

	columns := rows[0].Keys()
	if len(columns) == 0 {
		return mutedStyle.Render(NoData)
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, col := range columns {
			if w := lipgloss.Width(row.Get(col)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(line(columns, widths)))
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = row.Get(col)
		}
		b.WriteString("\n")
		b.WriteString(cellStyle.Render(line(cells, widths)))
	}
	return b.String()
}

func line(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = pad(c, widths[i])
	}
	return strings.TrimRight(strings.Join(parts, strings.Repeat(" ", columnGap)), " ")
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
