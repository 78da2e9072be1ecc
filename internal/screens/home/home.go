package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/daily"
	"github.com/abhisek/mathquest/internal/screens/history"
	"github.com/abhisek/mathquest/internal/screens/levels"
	"github.com/abhisek/mathquest/internal/screens/missions"
	"github.com/abhisek/mathquest/internal/screens/quiz"
	"github.com/abhisek/mathquest/internal/screens/summary"
	"github.com/abhisek/mathquest/internal/screens/welcome"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps quiz.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home menu. History is disabled when repo is nil.
func New(deps quiz.Deps, repo store.EventRepo) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Push(build()) }
	}

	items := []components.MenuItem{
		{Label: "LEVELS", Detail: "easy · medium · hard", Action: push(func() screen.Screen {
			return levels.New(deps)
		})},
		{Label: "DAILY CHALLENGE", Action: push(func() screen.Screen {
			date := ""
			if d := deps.State.Daily(); d != nil {
				date = d.Date
			}
			return daily.New(deps, date)
		})},
		{Label: "MISSIONS", Action: push(func() screen.Screen {
			return missions.New(deps)
		})},
		{Label: "SUMMARY", Action: push(func() screen.Screen {
			return summary.New(deps.State)
		})},
		{Label: "HISTORY", Disabled: repo == nil, Action: push(func() screen.Screen {
			return history.New(repo)
		})},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	if repo == nil {
		items[4].Detail = "journal off"
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.deps.State
	today := problemgen.Today()
	compact := layout.Compact(height)

	var sections []string
	sections = append(sections, welcome.RenderBanner(width))
	if !compact {
		sections = append(sections, RenderMascot(mascotFor(st.CurrentScore(), st.DailySolved(today), session.HintCost)))
	}
	sections = append(sections, renderStats(st, today))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderStats(st *session.State, today string) string {
	dailyStatus := theme.Pending.Render("○ daily open")
	if st.DailySolved(today) {
		dailyStatus = theme.Correct.Render("✓ daily done")
	}
	line := fmt.Sprintf("%s   %s   %s",
		theme.Score.Render(fmt.Sprintf("★ %d PTS", st.CurrentScore())),
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("🚀 %d/%d MISSIONS", st.MissionsCompleted(), problemgen.MissionsCount)),
		dailyStatus,
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 1).
		Render(line)
}
