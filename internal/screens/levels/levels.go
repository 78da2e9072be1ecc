package levels

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

// LevelsScreen is leveled practice: three tiers of twenty questions.
type LevelsScreen struct {
	deps  quiz.Deps
	panel quiz.Panel
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates a levels screen on the session's active tier and cursor.
func New(deps quiz.Deps) *LevelsScreen {
	return &LevelsScreen{
		deps:  deps,
		panel: quiz.NewPanel(deps),
	}
}

func (s *LevelsScreen) Init() tea.Cmd {
	return s.panel.Init()
}

func (s *LevelsScreen) Title() string {
	return "Levels"
}

func (s *LevelsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Tier"},
		{Key: "←→", Description: "Prev/Next"},
	}
	hints = append(hints, s.panel.KeyHints()...)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *LevelsScreen) target() quiz.Target {
	ref := s.deps.State.CurrentLevelRef()
	q, _ := s.deps.State.TierQuestion(ref.Tier, ref.Index)
	return quiz.Target{Ref: ref, Text: q.Text, Answer: q.Answer, Hint: q.Hint, Slips: q.Slips}
}

func (s *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "tab":
			s.cycleTier(1)
			return s, nil
		case "shift+tab":
			s.cycleTier(-1)
			return s, nil
		case "left":
			s.move(-1)
			return s, nil
		case "right":
			s.move(1)
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

func (s *LevelsScreen) cycleTier(dir int) {
	tiers := problemgen.AllTiers()
	cur := 0
	for i, t := range tiers {
		if t == s.deps.State.Tier() {
			cur = i
		}
	}
	next := tiers[(cur+dir+len(tiers))%len(tiers)]
	if err := s.deps.State.SelectTier(next); err == nil {
		s.panel.Reset()
	}
}

func (s *LevelsScreen) move(dir int) {
	before := s.deps.State.LevelIndex()
	if s.deps.State.MoveLevel(dir) != before {
		s.panel.Reset()
	}
}

func (s *LevelsScreen) View(width, height int) string {
	st := s.deps.State
	ref := st.CurrentLevelRef()
	q, err := st.TierQuestion(ref.Tier, ref.Index)
	if err != nil {
		return theme.Incorrect.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(renderTierTabs(st.Tier()) + "\n\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d / %d", ref.Index+1, problemgen.QuestionsPerLevel)))
	b.WriteString("   " + quiz.StatusBadge(q.Status) + "\n\n")
	b.WriteString(theme.Body.Width(min(width-4, 72)).Render(q.Text) + "\n\n")
	b.WriteString(s.panel.View(width) + "\n")

	prog := session.BuildSummary(st).Tiers[ref.Tier]
	b.WriteString(components.NewProgressBar(ref.Tier.DisplayName(), prog.Attempted, prog.Total, min(width-4, 60)).View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func renderTierTabs(active problemgen.Tier) string {
	tabs := make([]string, 0, 3)
	for _, t := range problemgen.AllTiers() {
		if t == active {
			tabs = append(tabs, theme.TabActive.Render(t.DisplayName()))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(t.DisplayName()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
