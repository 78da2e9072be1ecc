package lessons

import "github.com/abhisek/mathquest/internal/problemgen"

// ExplainInput is a missed question and what the learner typed.
type ExplainInput struct {
	Kind          problemgen.Kind
	Tier          problemgen.Tier // level questions only
	QuestionText  string
	CorrectAnswer float64
	LearnerAnswer string
	Hint          string
}

// Explanation is a short worked solution for one question.
type Explanation struct {
	Title  string
	Steps  []string
	Answer string
	Tip    string
}
