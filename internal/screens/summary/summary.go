package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// SummaryScreen displays progress for the running session.
type SummaryScreen struct {
	state *session.State
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(state *session.State) *SummaryScreen {
	return &SummaryScreen{state: state}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.Pop()
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := session.BuildSummary(s.state)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Title.Render("Your progress")))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Score.Render(fmt.Sprintf("★ %d points", sum.Score))))
	b.WriteString("\n\n")

	barWidth := min(width-8, 56)
	for _, tier := range problemgen.AllTiers() {
		p := sum.Tiers[tier]
		b.WriteString(center(components.NewProgressBar(fmt.Sprintf("%-8s", tier.DisplayName()), p.Attempted, p.Total, barWidth).View()))
		b.WriteString("\n")
		b.WriteString(center(theme.Hint.Render(accuracyLine(p))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(components.NewProgressBar(fmt.Sprintf("%-8s", "Missions"), sum.Missions.Attempted, sum.Missions.Total, barWidth).View()))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(accuracyLine(sum.Missions))))
	b.WriteString("\n\n")

	days := "days"
	if sum.DailySolved == 1 {
		days = "day"
	}
	b.WriteString(center(theme.Body.Render(fmt.Sprintf("Daily challenges: %d %s", sum.DailySolved, days))))
	b.WriteString("\n")

	return b.String()
}

func accuracyLine(p session.Progress) string {
	if p.Attempted == 0 {
		return "not started"
	}
	return fmt.Sprintf("%d/%d correct (%.0f%%)", p.Correct, p.Attempted, p.Accuracy()*100)
}
