package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

const bannerArt = `█▀▄▀█ ▄▀█ ▀█▀ █ █ █▀█ █ █ █▀▀ █▀ ▀█▀
█ ▀ █ █▀█  █  █▀█ ▀▀█ █▄█ ██▄ ▄█  █ `

const bannerCompact = "M A T H Q U E S T"

// RenderBanner returns the MathQuest banner styled in the accent color.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
