package missions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/quiz"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// jump is how far PgUp/PgDn move the mission cursor.
const jump = 10

// MissionsScreen walks the mission track.
type MissionsScreen struct {
	deps  quiz.Deps
	panel quiz.Panel
}

var _ screen.Screen = (*MissionsScreen)(nil)
var _ screen.KeyHintProvider = (*MissionsScreen)(nil)

// New creates a missions screen at the session's mission cursor.
func New(deps quiz.Deps) *MissionsScreen {
	return &MissionsScreen{
		deps:  deps,
		panel: quiz.NewPanel(deps),
	}
}

func (s *MissionsScreen) Init() tea.Cmd {
	return s.panel.Init()
}

func (s *MissionsScreen) Title() string {
	return "Missions"
}

func (s *MissionsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←→", Description: "Prev/Next"}}
	hints = append(hints, s.panel.KeyHints()...)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *MissionsScreen) target() quiz.Target {
	ref := s.deps.State.CurrentMissionRef()
	m, _ := s.deps.State.Mission(ref.Index)
	return quiz.Target{Ref: ref, Text: m.Text, Answer: m.Answer, Hint: m.Hint, Slips: m.Slips}
}

func (s *MissionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "left":
			s.move(-1)
			return s, nil
		case "right":
			s.move(1)
			return s, nil
		case "pgup":
			s.move(-jump)
			return s, nil
		case "pgdown":
			s.move(jump)
			return s, nil
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

func (s *MissionsScreen) move(dir int) {
	before := s.deps.State.MissionIndex()
	if s.deps.State.MoveMission(dir) != before {
		s.panel.Reset()
	}
}

func (s *MissionsScreen) View(width, height int) string {
	st := s.deps.State
	idx := st.MissionIndex()
	m, err := st.Mission(idx)
	if err != nil {
		return theme.Incorrect.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(theme.Selected.Render(fmt.Sprintf("🚀 Mission %d / %d", idx+1, problemgen.MissionsCount)))
	b.WriteString("   " + quiz.StatusBadge(m.Status) + "\n\n")
	b.WriteString(theme.Body.Width(min(width-4, 72)).Render(m.Text) + "\n\n")
	b.WriteString(s.panel.View(width) + "\n")
	b.WriteString(components.NewProgressBar("Completed", st.MissionsCompleted(), problemgen.MissionsCount, min(width-4, 60)).View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
