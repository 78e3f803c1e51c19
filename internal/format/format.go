// Package format renders catalog and selection data as terminal text.
package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/omppui/internal/omdb"
)

// Title renders a section heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Hint renders a suggestion line.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// Status renders the run status text colored by outcome.
func Status(code string) string {
	color := colorInfo
	switch code {
	case omdb.RunSuccess:
		color = colorSuccess
	case omdb.RunFailed, omdb.RunExit:
		color = colorError
	case omdb.RunInitial:
		color = colorWarning
	}
	return lipgloss.NewStyle().Foreground(color).Render(omdb.StatusTextOf(code))
}

// KeyValues renders label/value pairs, labels padded to the widest label.
// pairs holds label, value, label, value, ...
func KeyValues(pairs ...string) string {
	width := 0
	for k := 0; k+1 < len(pairs); k += 2 {
		width = max(width, lipgloss.Width(pairs[k]))
	}
	lines := make([]string, 0, len(pairs)/2)
	for k := 0; k+1 < len(pairs); k += 2 {
		label := labelStyle.Render(padRight(pairs[k]+":", width+1))
		lines = append(lines, label+" "+valueStyle.Render(pairs[k+1]))
	}
	return strings.Join(lines, "\n")
}

// Table renders rows under headers with columns padded to the widest cell.
// Cells may already carry styles.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for c, h := range headers {
		widths[c] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for c := 0; c < len(row) && c < len(widths); c++ {
			widths[c] = max(widths[c], lipgloss.Width(row[c]))
		}
	}

	var b strings.Builder
	for c, h := range headers {
		if c > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerStyle.Render(pad(h, widths[c], c == len(headers)-1)))
	}
	for _, row := range rows {
		b.WriteString("\n")
		for c := range headers {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[c], c == len(headers)-1))
		}
	}
	return b.String()
}

func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	return padRight(s, width)
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
