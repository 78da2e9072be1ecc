package cmd

import (
	"fmt"
	"slices"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell       = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable draws rows under headers. Columns listed in right are
// right-aligned, which suits counts and money.
func renderTable(headers []string, rows [][]string, right ...int) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = headerCell
			}
			if slices.Contains(right, col) {
				s = s.Align(lipgloss.Right)
			}
			return s
		}).
		Render()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func checkMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
