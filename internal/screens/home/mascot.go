package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // today's daily challenge is done
	MascotBroke                     // not enough points for a hint
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +−×÷│
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +−×÷│
└─╥═╥─┘
  ╚═╝`

const mascotBroke = `┌─────┐
│ ◉ ◉ │ ?
│  ﹏  │
│ +−×÷│
└─────┘`

// mascotFor picks the variant for the current session.
func mascotFor(score int, dailyDone bool, hintCost int) MascotVariant {
	switch {
	case dailyDone:
		return MascotCelebrating
	case score < hintCost:
		return MascotBroke
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Accent
	case MascotBroke:
		art, fg = mascotBroke, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
