package daily

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/screens/quiz"
	"github.com/abhisek/mathquest/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *DailyScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestNew_DefaultsToToday(t *testing.T) {
	st := session.New()
	New(quiz.Deps{State: st}, "not-a-date")
	if d := st.Daily(); d == nil || d.Date != problemgen.Today() {
		t.Errorf("daily = %+v, want today %s", d, problemgen.Today())
	}
}

func TestDailyScreen_SubmitAwardsOnce(t *testing.T) {
	st := session.New()
	s := New(quiz.Deps{State: st}, "2024-01-01")

	typeText(s, "1")
	s.Update(specialKey(tea.KeyEnter))
	if !st.DailySolved("2024-01-01") || st.CurrentScore() != session.CompletionPoints {
		t.Fatalf("solved=%v score=%d", st.DailySolved("2024-01-01"), st.CurrentScore())
	}
	if !strings.Contains(s.View(100, 30), "Not yet. Correct answer: 414") {
		t.Error("expected daily incorrect feedback")
	}

	typeText(s, "414")
	s.Update(specialKey(tea.KeyEnter))
	if st.CurrentScore() != session.CompletionPoints {
		t.Errorf("second submission changed score to %d", st.CurrentScore())
	}
}

func TestDailyScreen_ChangeDate(t *testing.T) {
	st := session.New()
	s := New(quiz.Deps{State: st}, "2024-01-01")

	s.Update(keyPress('d'))
	if !s.editing {
		t.Fatal("d should open the date editor")
	}
	for range 10 {
		s.Update(specialKey(tea.KeyBackspace))
	}
	typeText(s, "2024-13-01")
	s.Update(specialKey(tea.KeyEnter))
	if !s.editing || !strings.Contains(s.View(100, 30), "is not a YYYY-MM-DD date") {
		t.Fatal("invalid date should keep the editor open with an error")
	}

	for range 10 {
		s.Update(specialKey(tea.KeyBackspace))
	}
	typeText(s, "2024-01-02")
	s.Update(specialKey(tea.KeyEnter))
	if s.editing {
		t.Error("valid date should close the editor")
	}
	if d := st.Daily(); d == nil || d.Date != "2024-01-02" {
		t.Errorf("daily = %+v", d)
	}
}

func TestDailyScreen_EscCancelsEditing(t *testing.T) {
	st := session.New()
	s := New(quiz.Deps{State: st}, "2024-01-01")

	s.Update(keyPress('d'))
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd != nil || s.editing {
		t.Error("Esc while editing should only close the editor")
	}
	if st.Daily().Date != "2024-01-01" {
		t.Error("cancel should keep the loaded date")
	}
}
