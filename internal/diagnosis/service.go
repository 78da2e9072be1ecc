package diagnosis

import "github.com/abhisek/mathquest/internal/problemgen"

var categoryMessages = map[ErrorCategory]string{
	CategorySpeedRush: "That was quick! Take a moment to check each step.",
	CategoryRounding:  "Very close. Keep at least two decimal places.",
	CategoryCareless:  "So close! Recheck your arithmetic.",
}

// Service classifies wrong answers with an ordered classifier chain.
type Service struct {
	classifiers []Classifier
}

// NewService creates a diagnosis service. With no classifiers the default
// chain is used.
func NewService(classifiers ...Classifier) *Service {
	if len(classifiers) == 0 {
		classifiers = DefaultClassifiers()
	}
	return &Service{classifiers: classifiers}
}

// Diagnose classifies input. A correct guess yields nil.
func (s *Service) Diagnose(input *ClassifyInput) *DiagnosisResult {
	if problemgen.IsCorrect(input.Guess, input.Answer) {
		return nil
	}

	cat, conf, name := RunClassifiers(s.classifiers, input)
	if cat == "" {
		return &DiagnosisResult{Category: CategoryUnclassified, ClassifierName: "none"}
	}

	result := &DiagnosisResult{
		Category:       cat,
		Confidence:     conf,
		ClassifierName: name,
		Message:        categoryMessages[cat],
	}
	if cat == CategoryMisconception {
		slip, _ := problemgen.MatchSlip(input.Slips, input.Guess, input.Answer)
		result.MisconceptionID = slip.ID
		if m := GetMisconception(slip.ID); m != nil {
			result.Message = m.Description
		}
	}
	return result
}
