package daily

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/quiz"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// DailyScreen shows the challenge for one date. Pressing d edits the date.
type DailyScreen struct {
	deps  quiz.Deps
	panel quiz.Panel

	editing   bool
	dateInput components.TextInput
	dateErr   string
}

var _ screen.Screen = (*DailyScreen)(nil)
var _ screen.KeyHintProvider = (*DailyScreen)(nil)

// New creates a daily screen and loads the challenge for date, or for
// today when date is empty or invalid.
func New(deps quiz.Deps, date string) *DailyScreen {
	if !problemgen.ValidDate(date) {
		date = problemgen.Today()
	}
	deps.State.LoadDaily(date)
	return &DailyScreen{
		deps:  deps,
		panel: quiz.NewPanel(deps),
	}
}

func (s *DailyScreen) Init() tea.Cmd {
	return s.panel.Init()
}

func (s *DailyScreen) Title() string {
	return "Daily Challenge"
}

func (s *DailyScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load date"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{{Key: "d", Description: "Date"}}
	hints = append(hints, s.panel.KeyHints()...)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *DailyScreen) date() string {
	if d := s.deps.State.Daily(); d != nil {
		return d.Date
	}
	return ""
}

func (s *DailyScreen) target() quiz.Target {
	d := s.deps.State.Daily()
	if d == nil {
		return quiz.Target{Ref: session.DailyRef("")}
	}
	return quiz.Target{Ref: session.DailyRef(d.Date), Text: d.Text, Answer: d.Answer, Hint: d.Hint, Slips: d.Slips}
}

func (s *DailyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.editing {
		return s.updateDate(msg)
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "d":
			s.editing = true
			s.dateErr = ""
			s.dateInput = components.NewDateInput(s.date())
			return s, s.dateInput.Model.Focus()
		case "enter":
			return s, s.panel.Submit(s.target())
		case "h":
			return s, s.panel.Hint(s.target())
		case "e":
			return s, s.panel.Explain()
		}
	}

	var cmd tea.Cmd
	s.panel, cmd = s.panel.Update(msg)
	return s, cmd
}

func (s *DailyScreen) updateDate(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc":
			s.editing = false
			s.dateErr = ""
			return s, nil
		case "enter":
			key := strings.TrimSpace(s.dateInput.Value())
			if !problemgen.ValidDate(key) {
				s.dateErr = fmt.Sprintf("%q is not a YYYY-MM-DD date", key)
				return s, nil
			}
			s.editing = false
			s.dateErr = ""
			if key != s.date() {
				s.deps.State.LoadDaily(key)
				s.panel.Reset()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.dateInput, cmd = s.dateInput.Update(msg)
	return s, cmd
}

func (s *DailyScreen) View(width, height int) string {
	d := s.deps.State.Daily()
	if d == nil {
		return theme.Hint.Render("No daily challenge loaded.")
	}

	var b strings.Builder
	b.WriteString(theme.Selected.Render("📅 " + d.Date))
	if s.deps.State.DailySolved(d.Date) {
		b.WriteString("   " + theme.Correct.Render("✓ done"))
	} else {
		b.WriteString("   " + theme.Pending.Render("○ open"))
	}
	b.WriteString("\n\n")

	if s.editing {
		b.WriteString(theme.Body.Render("Date: ") + s.dateInput.View() + "\n")
		if s.dateErr != "" {
			b.WriteString(theme.Incorrect.Render(s.dateErr) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Body.Width(min(width-4, 72)).Render(d.Text) + "\n\n")
	b.WriteString(s.panel.View(width))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
