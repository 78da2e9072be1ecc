// Package quiz holds the answer panel shared by the levels, daily and
// missions screens.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/diagnosis"
	"github.com/abhisek/mathquest/internal/journal"
	"github.com/abhisek/mathquest/internal/lessons"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// explainTimeout bounds a single tutor request from the UI.
const explainTimeout = 45 * time.Second

// Explainer produces worked explanations. *lessons.Service implements it.
type Explainer interface {
	Explain(ctx context.Context, input lessons.ExplainInput) (*lessons.Explanation, error)
}

// Deps are the collaborators shared by every quiz screen. State is required;
// Recorder and Tutor may be nil.
type Deps struct {
	State    *session.State
	Recorder *journal.Recorder
	Tutor    Explainer
}

// Target is the question the panel is answering.
type Target struct {
	Ref    session.Ref
	Text   string
	Answer float64
	Hint   string
	Slips  []problemgen.Slip
}

// ExplainedMsg delivers a tutor explanation.
type ExplainedMsg struct {
	Seq         int
	Explanation *lessons.Explanation
	Err         error
}

// JournaledMsg is returned by journal commands once the write finished.
type JournaledMsg struct{}

// miss is the last incorrect submission, kept for the tutor.
type miss struct {
	target Target
	guess  string
}

// Panel is the answer input with its feedback, hint and explanation lines.
type Panel struct {
	deps      Deps
	input     components.TextInput
	diagnoser *diagnosis.Service
	now       func() time.Time
	shownAt   time.Time

	feedback   string
	correct    bool
	diagnosis  *diagnosis.DiagnosisResult
	hintMsg    string
	hintText   string
	lastMiss   *miss
	explaining bool
	explained  *lessons.Explanation
	explainErr string

	// seq invalidates explanations requested for an earlier question.
	seq int
}

// NewPanel creates an empty answer panel.
func NewPanel(deps Deps) Panel {
	return Panel{
		deps:      deps,
		input:     components.NewAnswerInput(),
		diagnoser: diagnosis.NewService(),
		now:       time.Now,
		shownAt:   time.Now(),
	}
}

// Init focuses the input.
func (p Panel) Init() tea.Cmd {
	return p.input.Model.Focus()
}

// Reset clears everything shown for the previous question.
func (p *Panel) Reset() {
	p.input.Reset()
	p.feedback = ""
	p.correct = false
	p.diagnosis = nil
	p.hintMsg = ""
	p.hintText = ""
	p.lastMiss = nil
	p.explaining = false
	p.explained = nil
	p.explainErr = ""
	p.shownAt = p.now()
	p.seq++
}

// Submit grades the typed guess against t. Unparseable input is ignored.
func (p *Panel) Submit(t Target) tea.Cmd {
	guess := p.input.Value()
	res, err := p.deps.State.SubmitAnswer(t.Ref, guess)
	if err != nil {
		p.feedback = err.Error()
		p.correct = false
		return nil
	}
	if !res.Accepted {
		return nil
	}

	p.feedback = session.Feedback(t.Ref.Kind, res)
	p.correct = res.Correct
	p.input.Submit(res.Correct)
	p.explained = nil
	p.explainErr = ""
	if res.Correct {
		p.lastMiss = nil
		p.diagnosis = nil
	} else {
		p.lastMiss = &miss{target: t, guess: guess}
		p.diagnosis = p.diagnoser.Diagnose(&diagnosis.ClassifyInput{
			Answer:         res.Answer,
			Guess:          res.Guess,
			Slips:          t.Slips,
			ResponseTimeMs: int(p.now().Sub(p.shownAt).Milliseconds()),
		})
	}

	rec := p.deps.Recorder
	if !rec.Enabled() {
		return nil
	}
	return func() tea.Msg {
		rec.Answer(context.Background(), t.Ref, t.Text, guess, res)
		return JournaledMsg{}
	}
}

// Hint spends points on the hint for t.
func (p *Panel) Hint(t Target) tea.Cmd {
	res, err := p.deps.State.UseHint(t.Ref)
	if err != nil {
		p.hintMsg = err.Error()
		return nil
	}
	p.hintMsg = res.Message
	if res.Granted {
		p.hintText = res.HintText
	}

	rec := p.deps.Recorder
	if !rec.Enabled() {
		return nil
	}
	return func() tea.Msg {
		rec.Hint(context.Background(), t.Ref, res)
		return JournaledMsg{}
	}
}

// CanExplain reports whether a tutor is configured and there is a miss to explain.
func (p Panel) CanExplain() bool {
	return p.deps.Tutor != nil && p.lastMiss != nil && !p.explaining
}

// Explain requests a worked explanation of the last miss.
func (p *Panel) Explain() tea.Cmd {
	if !p.CanExplain() {
		return nil
	}
	p.explaining = true
	p.explainErr = ""

	tutor := p.deps.Tutor
	seq := p.seq
	t := p.lastMiss.target
	input := lessons.ExplainInput{
		Kind:          t.Ref.Kind,
		Tier:          t.Ref.Tier,
		QuestionText:  t.Text,
		CorrectAnswer: t.Answer,
		LearnerAnswer: p.lastMiss.guess,
		Hint:          t.Hint,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
		defer cancel()
		exp, err := tutor.Explain(ctx, input)
		return ExplainedMsg{Seq: seq, Explanation: exp, Err: err}
	}
}

// Update routes panel messages and keystrokes for the input.
func (p Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if msg, ok := msg.(ExplainedMsg); ok {
		if msg.Seq != p.seq {
			return p, nil
		}
		p.explaining = false
		if msg.Err != nil {
			p.explainErr = "Tutor unavailable: " + msg.Err.Error()
		} else {
			p.explained = msg.Explanation
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Feedback returns the last submission message.
func (p Panel) Feedback() string {
	return p.feedback
}

// Diagnosis returns the classification of the last wrong answer, if any.
func (p Panel) Diagnosis() *diagnosis.DiagnosisResult {
	return p.diagnosis
}

// HintMessage returns the last hint message and the revealed hint, if any.
func (p Panel) HintMessage() (string, string) {
	return p.hintMsg, p.hintText
}

// Explanation returns the explanation for the last miss, if one arrived.
func (p Panel) Explanation() *lessons.Explanation {
	return p.explained
}

// View renders the input and the lines below it.
func (p Panel) View(width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render("Answer: ") + p.input.View())
	b.WriteString("\n\n")

	if p.feedback != "" {
		style := theme.Incorrect
		if p.correct {
			style = theme.Correct
		}
		b.WriteString(style.Render(p.feedback) + "\n")
	}
	if p.diagnosis != nil && p.diagnosis.Message != "" {
		b.WriteString(theme.Hint.Render("🔎 "+p.diagnosis.Message) + "\n")
	}
	if p.hintMsg != "" {
		b.WriteString(theme.Hint.Render(p.hintMsg) + "\n")
	}
	if p.hintText != "" {
		b.WriteString(theme.Body.Render("💡 "+p.hintText) + "\n")
	}

	switch {
	case p.explaining:
		b.WriteString("\n" + theme.Hint.Render("Asking the tutor...") + "\n")
	case p.explainErr != "":
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.explainErr) + "\n")
	case p.explained != nil:
		b.WriteString("\n" + renderExplanation(p.explained, width) + "\n")
	}

	return b.String()
}

func renderExplanation(e *lessons.Explanation, width int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render(e.Title) + "\n")
	for i, step := range e.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString(theme.Correct.Render("Answer: "+e.Answer) + "\n")
	if e.Tip != "" {
		b.WriteString(theme.Hint.Render("Tip: " + e.Tip))
	}
	w := min(width-4, 72)
	return theme.Card.Width(max(w, 20)).Render(strings.TrimRight(b.String(), "\n"))
}

// KeyHints returns the footer hints for the panel's keys.
func (p Panel) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "h", Description: fmt.Sprintf("Hint (-%d)", session.HintCost)},
	}
	if p.CanExplain() {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	}
	return hints
}

// StatusBadge renders a question status.
func StatusBadge(st problemgen.Status) string {
	switch st {
	case problemgen.StatusCorrect:
		return theme.Correct.Render("✓ solved")
	case problemgen.StatusIncorrect:
		return theme.Incorrect.Render("✗ attempted")
	default:
		return theme.Pending.Render("○ new")
	}
}
