package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/problemgen"
)

// ErrAnswerMismatch is returned when the model's worked answer disagrees
// with the question's known answer.
var ErrAnswerMismatch = errors.New("explanation disagrees with the known answer")

// Service generates worked explanations for missed questions.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type explanationOutput struct {
	Title  string   `json:"title"`
	Steps  []string `json:"steps"`
	Answer string   `json:"answer"`
	Tip    string   `json:"tip"`
}

// Explain asks the provider for a worked solution to input. It blocks until
// the provider answers, so UI callers run it inside a command.
func (s *Service) Explain(ctx context.Context, input ExplainInput) (*Explanation, error) {
	resp, err := s.provider.Complete(ctx, llm.Prompt{
		Purpose:     "explain",
		System:      explainSystemPrompt,
		User:        buildExplainUserMessage(input, s.cfg.MaxSteps),
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, fmt.Errorf("parse explanation response: no steps")
	}

	if !answerMatches(out.Answer, input.CorrectAnswer) {
		return nil, fmt.Errorf("%w: model said %q, expected %s",
			ErrAnswerMismatch, out.Answer, problemgen.FormatAnswer(input.CorrectAnswer))
	}

	steps := out.Steps
	if s.cfg.MaxSteps > 0 && len(steps) > s.cfg.MaxSteps {
		steps = steps[:s.cfg.MaxSteps]
	}

	return &Explanation{
		Title:  out.Title,
		Steps:  steps,
		Answer: problemgen.FormatAnswer(input.CorrectAnswer),
		Tip:    out.Tip,
	}, nil
}

// answerMatches accepts the exact answer or its two-decimal rounding,
// ignoring currency signs, thousands separators and a trailing unit word.
func answerMatches(text string, want float64) bool {
	text = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(text))
	if f := strings.Fields(text); len(f) > 1 {
		text = f[0]
	}
	got, err := problemgen.ParseGuess(text)
	if err != nil {
		return false
	}
	return problemgen.IsCorrect(got, want) || problemgen.IsCorrect(got, roundToCents(want))
}

// roundToCents matches the two-decimal rounding the prompt asks for.
func roundToCents(n float64) float64 {
	v, err := problemgen.ParseGuess(problemgen.FormatAnswer(n))
	if err != nil {
		return n
	}
	return v
}
