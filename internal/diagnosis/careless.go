package diagnosis

import "math"

// CarelessMaxDelta is the largest miss (inclusive) on a whole-number answer
// still treated as an arithmetic slip.
const CarelessMaxDelta = 2

// RoundingClassifier flags guesses within one unit of a fractional answer.
type RoundingClassifier struct{}

func (c *RoundingClassifier) Name() string { return "rounding" }

func (c *RoundingClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if isWhole(input.Answer) {
		return "", 0
	}
	if math.Abs(input.Guess-input.Answer) < 1 {
		return CategoryRounding, 0.85
	}
	return "", 0
}

// CarelessClassifier flags near misses on whole-number answers.
type CarelessClassifier struct{}

func (c *CarelessClassifier) Name() string { return "near-miss" }

func (c *CarelessClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if !isWhole(input.Answer) {
		return "", 0
	}
	if math.Abs(input.Guess-input.Answer) <= CarelessMaxDelta {
		return CategoryCareless, 0.7
	}
	return "", 0
}

func isWhole(f float64) bool {
	return f == math.Trunc(f)
}
