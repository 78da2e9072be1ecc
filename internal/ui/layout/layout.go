// Package layout frames every screen: a status bar on top, the screen body,
// and a row of key hints at the bottom.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// The smallest terminal the quiz screens fit in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// compactBelow is the body height under which decorations are dropped.
const compactBelow = 22

// KeyHint is one "key action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Status is what the top bar reports about the session.
type Status struct {
	Screen    string
	Score     int
	Tier      string // empty hides the tier badge
	DailyDone bool
}

func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Compact reports whether a body of bodyHeight rows should skip the mascot
// and other decorations.
func Compact(bodyHeight int) bool {
	return bodyHeight < compactBelow
}

// SizeWarning asks the player to enlarge the terminal.
func SizeWarning(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		theme.Incorrect.Render("This window is too small for MathQuest."),
		"",
		theme.Body.Render(fmt.Sprintf("Need %d×%d, have %d×%d.", MinWidth, MinHeight, width, height)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

// Header shows the app name and screen title on the left and the session's
// tier, daily state and points on the right.
func Header(st Status, width int) string {
	left := theme.Selected.Render("MathQuest") + theme.Pending.Render(" · ") + theme.Body.Render(st.Screen)

	var badges []string
	if st.Tier != "" {
		badges = append(badges, theme.TierBadge(st.Tier).Render(strings.ToUpper(st.Tier)))
	}
	if st.DailyDone {
		badges = append(badges, theme.Correct.Render("daily ✓"))
	}
	badges = append(badges, theme.Score.Render(fmt.Sprintf("★ %d", st.Score)))
	right := strings.Join(badges, "  ")

	inner := innerWidth(width)
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return bar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// Footer lays hints out left to right and drops the ones that do not fit.
func Footer(hints []KeyHint, width int) string {
	inner := innerWidth(width)
	var line string
	for _, h := range hints {
		part := theme.Body.Bold(true).Render(h.Key) + " " + theme.Pending.Render(h.Description)
		next := part
		if line != "" {
			next = line + "   " + part
		}
		if lipgloss.Width(next) > inner {
			break
		}
		line = next
	}
	return bar.Width(width).Render(line)
}

// BodyHeight is the room left for a screen between header and footer.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// Frame stacks header, body and footer, padding the body to fill height.
func Frame(header, body, footer string, width, height int) string {
	body = lipgloss.NewStyle().
		Width(width).
		Height(BodyHeight(header, footer, height)).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// innerWidth is width less the bar's border and padding.
func innerWidth(width int) int {
	return max(width-bar.GetHorizontalFrameSize(), 0)
}
