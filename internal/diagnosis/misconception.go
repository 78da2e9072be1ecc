package diagnosis

import "github.com/abhisek/mathquest/internal/problemgen"

// MisconceptionClassifier matches the guess against the question's known slips.
type MisconceptionClassifier struct{}

func (c *MisconceptionClassifier) Name() string { return "slip-match" }

func (c *MisconceptionClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if _, ok := problemgen.MatchSlip(input.Slips, input.Guess, input.Answer); ok {
		return CategoryMisconception, 0.95
	}
	return "", 0
}
