package missions

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/quiz"
	"github.com/abhisek/mathquest/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testMissionsScreen() (*MissionsScreen, *session.State) {
	st := session.New()
	return New(quiz.Deps{State: st}), st
}

func TestMissionsScreen_View(t *testing.T) {
	s, _ := testMissionsScreen()
	view := s.View(100, 30)
	if !strings.Contains(view, "Mission 1 / 100") {
		t.Error("view missing mission counter")
	}
	if !strings.Contains(view, "0/100") {
		t.Error("view missing completed count")
	}
}

func TestMissionsScreen_WrongAnswerStillCompletes(t *testing.T) {
	s, st := testMissionsScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if st.MissionsCompleted() != 1 || st.CurrentScore() != session.CompletionPoints {
		t.Errorf("completed=%d score=%d", st.MissionsCompleted(), st.CurrentScore())
	}
	m, _ := st.Mission(0)
	if !strings.Contains(scr.View(100, 30), "Not correct. Answer: "+problemgen.FormatAnswer(m.Answer)) {
		t.Error("expected incorrect feedback with the answer")
	}
}

func TestMissionsScreen_Paging(t *testing.T) {
	s, st := testMissionsScreen()

	s.Update(specialKey(tea.KeyPgDown))
	if st.MissionIndex() != jump {
		t.Errorf("index = %d, want %d", st.MissionIndex(), jump)
	}
	for range 20 {
		s.Update(specialKey(tea.KeyPgDown))
	}
	if st.MissionIndex() != problemgen.MissionsCount-1 {
		t.Errorf("index = %d, want %d", st.MissionIndex(), problemgen.MissionsCount-1)
	}
	s.Update(specialKey(tea.KeyLeft))
	if st.MissionIndex() != problemgen.MissionsCount-2 {
		t.Errorf("index = %d after left", st.MissionIndex())
	}
}

func TestMissionsScreen_NavigationClearsFeedback(t *testing.T) {
	s, _ := testMissionsScreen()
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyRight))

	if strings.Contains(s.View(100, 30), "Not correct") {
		t.Error("feedback should be cleared after moving to another mission")
	}
}
