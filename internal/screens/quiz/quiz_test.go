package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/diagnosis"
	"github.com/abhisek/mathquest/internal/journal"
	"github.com/abhisek/mathquest/internal/lessons"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
)

// mockEventRepo captures appended events.
type mockEventRepo struct {
	store.EventRepo
	answers []store.AnswerEventData
	hints   []store.HintEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

func (m *mockEventRepo) AppendHint(_ context.Context, data store.HintEventData) error {
	m.hints = append(m.hints, data)
	return nil
}

// mockTutor returns a canned explanation.
type mockTutor struct {
	got lessons.ExplainInput
	err error
}

func (m *mockTutor) Explain(_ context.Context, in lessons.ExplainInput) (*lessons.Explanation, error) {
	m.got = in
	if m.err != nil {
		return nil, m.err
	}
	return &lessons.Explanation{Title: "Add them", Steps: []string{"5 + 3 = 8"}, Answer: "8"}, nil
}

func newPanel(tutor Explainer) (Panel, *session.State, *mockEventRepo) {
	st := session.New()
	repo := &mockEventRepo{}
	p := NewPanel(Deps{State: st, Recorder: journal.New(repo, "test"), Tutor: tutor})
	return p, st, repo
}

func easyTarget(st *session.State) Target {
	ref := session.LevelRef(problemgen.TierEasy, 0)
	q, _ := st.TierQuestion(ref.Tier, ref.Index)
	return Target{Ref: ref, Text: q.Text, Answer: q.Answer, Hint: q.Hint, Slips: q.Slips}
}

func TestPanel_SubmitCorrect(t *testing.T) {
	p, st, repo := newPanel(nil)
	p.input.Model.SetValue("8")

	cmd := p.Submit(easyTarget(st))
	if cmd == nil {
		t.Fatal("expected a journal command")
	}
	if _, ok := cmd().(JournaledMsg); !ok {
		t.Error("journal command should return JournaledMsg")
	}
	if p.Feedback() != "Correct! Great job 🎉" {
		t.Errorf("feedback = %q", p.Feedback())
	}
	if st.CurrentScore() != session.CompletionPoints {
		t.Errorf("score = %d", st.CurrentScore())
	}
	if len(repo.answers) != 1 || !repo.answers[0].Correct {
		t.Errorf("answers = %+v", repo.answers)
	}
	if p.CanExplain() {
		t.Error("nothing to explain after a correct answer")
	}
}

func TestPanel_SubmitInvalidIsIgnored(t *testing.T) {
	p, st, repo := newPanel(nil)
	for _, in := range []string{"", "  ", "-", "."} {
		p.input.Model.SetValue(in)
		if cmd := p.Submit(easyTarget(st)); cmd != nil {
			t.Errorf("Submit(%q) returned a command", in)
		}
	}
	if p.Feedback() != "" || st.CurrentScore() != 0 || len(repo.answers) != 0 {
		t.Errorf("invalid input changed something: feedback=%q score=%d answers=%d",
			p.Feedback(), st.CurrentScore(), len(repo.answers))
	}
}

func TestPanel_HintGating(t *testing.T) {
	p, st, repo := newPanel(nil)
	target := easyTarget(st)

	p.Hint(target)()
	msg, text := p.HintMessage()
	if msg != "Not enough points for a hint. You need 10 points." || text != "" {
		t.Errorf("declined hint = %q / %q", msg, text)
	}

	st.SubmitAnswer(session.MissionRef(0), "1")
	st.SubmitAnswer(session.MissionRef(1), "1")
	p.Hint(target)()
	msg, text = p.HintMessage()
	if !strings.Contains(msg, "-10") || text != "Add the two numbers." {
		t.Errorf("granted hint = %q / %q", msg, text)
	}
	if st.CurrentScore() != 0 {
		t.Errorf("score = %d, want 0", st.CurrentScore())
	}
	if len(repo.hints) != 2 || repo.hints[0].Granted || !repo.hints[1].Granted {
		t.Errorf("hints = %+v", repo.hints)
	}
}

func TestPanel_ExplainAfterMiss(t *testing.T) {
	tutor := &mockTutor{}
	p, st, _ := newPanel(tutor)

	if p.Explain() != nil {
		t.Fatal("explain should be unavailable before a miss")
	}

	p.input.Model.SetValue("7")
	p.Submit(easyTarget(st))
	if !p.CanExplain() {
		t.Fatal("expected explain to be available after a miss")
	}

	cmd := p.Explain()
	if cmd == nil {
		t.Fatal("expected an explain command")
	}
	if p.CanExplain() {
		t.Error("explain should not be re-entrant while waiting")
	}

	p, _ = p.Update(cmd())
	if p.Explanation() == nil || p.Explanation().Answer != "8" {
		t.Errorf("explanation = %+v", p.Explanation())
	}
	if tutor.got.LearnerAnswer != "7" || tutor.got.CorrectAnswer != 8 {
		t.Errorf("tutor input = %+v", tutor.got)
	}
	if !strings.Contains(p.View(80), "5 + 3 = 8") {
		t.Error("view should render explanation steps")
	}
}

func TestPanel_StaleExplanationDropped(t *testing.T) {
	p, st, _ := newPanel(&mockTutor{})
	p.input.Model.SetValue("7")
	p.Submit(easyTarget(st))
	cmd := p.Explain()

	p.Reset()
	p, _ = p.Update(cmd())
	if p.Explanation() != nil {
		t.Error("explanation for a previous question should be dropped")
	}
}

func TestPanel_ExplainError(t *testing.T) {
	p, st, _ := newPanel(&mockTutor{err: errors.New("rate limited")})
	p.input.Model.SetValue("7")
	p.Submit(easyTarget(st))

	p, _ = p.Update(p.Explain()())
	if !strings.Contains(p.View(80), "Tutor unavailable") {
		t.Error("view should show the tutor error")
	}
}

func TestPanel_KeyHints(t *testing.T) {
	p, _, _ := newPanel(nil)
	if len(p.KeyHints()) != 2 {
		t.Errorf("KeyHints = %+v", p.KeyHints())
	}
}

func TestPanel_TypingFiltersLetters(t *testing.T) {
	p, _, _ := newPanel(nil)
	for _, r := range "1x2.5" {
		p, _ = p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if got := p.input.Value(); got != "12.5" {
		t.Errorf("input = %q, want %q", got, "12.5")
	}
}

func TestPanel_DiagnosesWrongAnswer(t *testing.T) {
	p, st, _ := newPanel(nil)
	shown := p.shownAt
	p.now = func() time.Time { return shown.Add(10 * time.Second) }

	p.input.Model.SetValue("2")
	p.Submit(easyTarget(st))

	d := p.Diagnosis()
	if d == nil || d.Category != diagnosis.CategoryMisconception {
		t.Fatalf("diagnosis = %+v, want misconception", d)
	}
	if d.MisconceptionID != problemgen.SlipSubtracted {
		t.Errorf("misconception = %q", d.MisconceptionID)
	}
	if !strings.Contains(p.View(80), "took one number away") {
		t.Error("view should show the diagnosis message")
	}

	p.input.Model.SetValue("8")
	p.Submit(easyTarget(st))
	if p.Diagnosis() != nil {
		t.Error("a correct answer should clear the diagnosis")
	}
}

func TestPanel_DiagnosesSpeedRush(t *testing.T) {
	p, st, _ := newPanel(nil)
	p.Reset()
	shown := p.shownAt
	p.now = func() time.Time { return shown.Add(700 * time.Millisecond) }

	p.input.Model.SetValue("40")
	p.Submit(easyTarget(st))

	if d := p.Diagnosis(); d == nil || d.Category != diagnosis.CategorySpeedRush {
		t.Errorf("diagnosis = %+v, want speed-rush", d)
	}
}
