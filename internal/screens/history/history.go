package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

const (
	answerLimit  = 50
	sessionLimit = 20
)

type historyLoadedMsg struct {
	Stats    *store.JournalStats
	Answers  []store.AnswerEventRecord
	Sessions []store.SessionEventRecord
	Err      error
}

type tab int

const (
	tabAnswers tab = iota
	tabSessions
)

// HistoryScreen displays journaled answers and past sessions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	stats     *store.JournalStats
	answers   []store.AnswerEventRecord
	sessions  []store.SessionEventRecord
	tab       tab
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := repo.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		answers, err := repo.RecentAnswers(ctx, store.QueryOpts{Limit: answerLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		sessions, err := repo.QuerySessions(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Stats: stats, Answers: answers, Sessions: sessions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Answers/Sessions"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) rows() int {
	if s.tab == tabSessions {
		return len(s.sessions)
	}
	return len(s.answers)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.stats = msg.Stats
			s.answers = msg.Answers
			s.sessions = msg.Sessions
			s.selected = min(s.selected, max(s.rows()-1, 0))
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "tab":
			s.tab = (s.tab + 1) % 2
			s.selected = 0
		case "r":
			return s, s.Init()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < s.rows()-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	if s.errMsg != "" {
		return center(lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg)))
	}
	if !s.loaded {
		return center(theme.Hint.Render("\n\n  Loading history..."))
	}
	if s.stats == nil || (s.stats.Answers == 0 && len(s.sessions) == 0) {
		return center(theme.Hint.Render("\n\n  Nothing journaled yet. Start practicing!"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(renderStats(s.stats)))
	b.WriteString("\n\n")

	var lines []string
	if s.tab == tabSessions {
		b.WriteString(center(theme.TabInactive.Render("Answers") + theme.TabActive.Render("Sessions")))
		lines = sessionLines(s.sessions)
	} else {
		b.WriteString(center(theme.TabActive.Render("Answers") + theme.TabInactive.Render("Sessions")))
		lines = answerLines(s.answers)
	}
	b.WriteString("\n\n")

	// Keep the selected row on screen.
	visible := max(height-8, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	for i := start; i < len(lines) && i < start+visible; i++ {
		style, prefix := theme.Unselected, "  "
		if i == s.selected {
			style, prefix = theme.Selected, "> "
		}
		b.WriteString(center(style.Render(prefix + lines[i])))
		b.WriteString("\n")
	}

	return b.String()
}

func renderStats(st *store.JournalStats) string {
	return fmt.Sprintf("%s   %s   %s",
		theme.Score.Render(fmt.Sprintf("★ best %d", st.BestScore)),
		theme.Body.Render(fmt.Sprintf("%d answers · %.0f%% correct", st.Answers, st.Accuracy()*100)),
		theme.Hint.Render(fmt.Sprintf("%d/%d hints granted", st.HintsGranted, st.HintsRequested)),
	)
}

func answerLines(recs []store.AnswerEventRecord) []string {
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		mark := "✗"
		if r.Correct {
			mark = "✓"
		}
		lines = append(lines, fmt.Sprintf("%s  %-14s %s  you: %-8s answer: %s",
			r.Timestamp.Format("Jan 02 15:04"), answerLabel(r), mark,
			r.LearnerAnswer, problemgen.FormatAnswer(r.CorrectAnswer)))
	}
	return lines
}

func answerLabel(r store.AnswerEventRecord) string {
	switch problemgen.Kind(r.Kind) {
	case problemgen.KindDaily:
		return "daily " + r.DateKey
	case problemgen.KindMission:
		return fmt.Sprintf("mission %d", r.QuestionIndex)
	default:
		return fmt.Sprintf("%s #%d", r.Tier, r.QuestionIndex)
	}
}

func sessionLines(recs []store.SessionEventRecord) []string {
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		if r.Action != "end" {
			lines = append(lines, fmt.Sprintf("%s  started", r.Timestamp.Format("Jan 02, 2006 15:04")))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %d:%02d  %d answered  %d correct  %d pts",
			r.Timestamp.Format("Jan 02, 2006 15:04"),
			r.DurationSecs/60, r.DurationSecs%60,
			r.Attempted, r.Correct, r.Score))
	}
	return lines
}
