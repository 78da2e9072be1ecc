// Package diagnosis classifies wrong answers so feedback can name the
// likely mistake.
package diagnosis

import "github.com/abhisek/mathquest/internal/problemgen"

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategoryMisconception ErrorCategory = "misconception"
	CategorySpeedRush     ErrorCategory = "speed-rush"
	CategoryRounding      ErrorCategory = "rounding"
	CategoryCareless      ErrorCategory = "careless"
	CategoryUnclassified  ErrorCategory = "unclassified"
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Answer float64
	Guess  float64
	Slips  []problemgen.Slip

	// ResponseTimeMs is how long the question was on screen. Zero means unknown.
	ResponseTimeMs int
}

// DiagnosisResult is the output of classifying a wrong answer.
type DiagnosisResult struct {
	Category        ErrorCategory
	MisconceptionID problemgen.SlipID // Non-empty only when Category == misconception
	Confidence      float64
	ClassifierName  string
	Message         string
}
