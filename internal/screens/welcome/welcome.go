package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

// Operators scroll across the splash while it animates.
const operators = "+ − × ÷ "

type tickMsg time.Time

// WelcomeScreen shows a short splash and then replaces itself with the
// screen built by next. Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	tagline      string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. tagline is shown under the banner.
func New(next func() screen.Screen, tagline string) *WelcomeScreen {
	return &WelcomeScreen{
		next:    next,
		tagline: tagline,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.next())
}

func (w *WelcomeScreen) View(width, height int) string {
	shift := w.tickCount % len([]rune(operators))
	ops := []rune(strings.Repeat(operators, 6))
	strip := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(string(ops[shift : shift+min(len(ops)-shift, 36)]))

	sections := []string{strip}
	if w.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(width), "")
		if w.tagline != "" {
			sections = append(sections, theme.Body.Bold(true).Render(w.tagline))
		}
	}
	if w.elapsed >= totalDur {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
