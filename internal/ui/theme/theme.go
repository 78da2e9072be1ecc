// Package theme holds the chalkboard palette and the shared text styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Chalk colours on a slate board.
var (
	Primary   = lipgloss.Color("#7DD3FC") // sky chalk
	Secondary = lipgloss.Color("#5EEAD4") // mint chalk
	Accent    = lipgloss.Color("#FDE047") // star yellow
	Success   = lipgloss.Color("#86EFAC")
	Error     = lipgloss.Color("#FCA5A5")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1F2937")
	Border    = lipgloss.Color("#475569")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Score    = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Card     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(1, 2)
)

// Answer and menu states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = Body
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Pending    = lipgloss.NewStyle().Foreground(TextDim)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
	TabActive      = lipgloss.NewStyle().Background(Primary).Foreground(BgCard).Bold(true).Padding(0, 2)
	TabInactive    = lipgloss.NewStyle().Foreground(TextDim).Padding(0, 2)
)

// tierColors runs from calm to alarming as the numbers grow.
var tierColors = map[string]color.Color{
	"easy":   Success,
	"medium": Accent,
	"hard":   Error,
}

// TierBadge styles a difficulty label. Unknown tiers fall back to the
// primary chalk.
func TierBadge(tier string) lipgloss.Style {
	bg, ok := tierColors[tier]
	if !ok {
		bg = Primary
	}
	return lipgloss.NewStyle().Background(bg).Foreground(BgCard).Bold(true).Padding(0, 1)
}
