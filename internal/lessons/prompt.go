package lessons

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathquest/internal/problemgen"
)

const explainSystemPrompt = `You are a patient, encouraging math tutor. A learner answered a word problem incorrectly and wants to see how to solve it. Keep every step short and concrete.`

func buildExplainUserMessage(input ExplainInput, maxSteps int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n", input.QuestionText)
	if input.Tier != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", input.Tier.DisplayName())
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", problemgen.FormatAnswer(input.CorrectAnswer))
	if input.LearnerAnswer != "" {
		fmt.Fprintf(&b, "Learner answered: %s\n", input.LearnerAnswer)
	}
	if input.Hint != "" {
		fmt.Fprintf(&b, "Method hint: %s\n", input.Hint)
	}

	fmt.Fprintf(&b, `
Instructions:
1. Solve the problem in at most %d steps, showing each calculation.
2. The final answer must equal the correct answer above. Round to two decimal places only if it is not a whole number.
3. If the learner's answer suggests a specific slip (added instead of multiplied, forgot the break, used hours instead of minutes), name it in the tip.
4. Use plain ASCII text for all math. No LaTeX. Use * for multiplication and / for division.`, maxSteps)

	return b.String()
}
