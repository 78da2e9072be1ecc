package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/session"
)

func playedState() *session.State {
	s := session.New()
	s.SubmitAnswer(session.LevelRef("easy", 0), "8")
	s.SubmitAnswer(session.LevelRef("easy", 1), "0")
	s.SubmitDaily("2024-01-01", "414")
	return s
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(session.New())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(playedState())
	view := s.View(100, 30)

	for _, want := range []string{"15 points", "1/2 correct (50%)", "not started", "1 day"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(session.New())
		_, cmd := s.Update(tea.KeyPressMsg{Code: key})
		if cmd == nil {
			t.Fatalf("expected a command on key %d", key)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("key %d should pop", key)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(session.New())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
