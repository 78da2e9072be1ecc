package diagnosis

import (
	"strings"
	"testing"

	"github.com/abhisek/mathquest/internal/problemgen"
)

func TestService_CorrectGuessHasNoDiagnosis(t *testing.T) {
	svc := NewService()
	if got := svc.Diagnose(&ClassifyInput{Answer: 8, Guess: 8}); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestService_Misconception(t *testing.T) {
	q := problemgen.NewLevelQuestion(problemgen.TierHard, 1)
	svc := NewService()

	result := svc.Diagnose(&ClassifyInput{Answer: q.Answer, Guess: 219.13, Slips: q.Slips})
	if result.Category != CategoryMisconception {
		t.Fatalf("got %q, want misconception", result.Category)
	}
	if result.MisconceptionID != problemgen.SlipSkippedBreak {
		t.Errorf("misconception = %q, want %q", result.MisconceptionID, problemgen.SlipSkippedBreak)
	}
	if !strings.Contains(result.Message, "break") {
		t.Errorf("message = %q, want it to mention the break", result.Message)
	}
}

func TestService_CategoryMessages(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name  string
		input ClassifyInput
		want  ErrorCategory
	}{
		{"speed rush", ClassifyInput{Answer: 64, Guess: 10, ResponseTimeMs: 800}, CategorySpeedRush},
		{"rounding", ClassifyInput{Answer: 234.1304347, Guess: 234}, CategoryRounding},
		{"careless", ClassifyInput{Answer: 64, Guess: 65}, CategoryCareless},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.Diagnose(&tc.input)
			if result.Category != tc.want {
				t.Errorf("got %q, want %q", result.Category, tc.want)
			}
			if result.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestService_Unclassified(t *testing.T) {
	result := NewService().Diagnose(&ClassifyInput{Answer: 64, Guess: 10})
	if result.Category != CategoryUnclassified || result.ClassifierName != "none" {
		t.Errorf("got %+v, want unclassified", result)
	}
	if result.Message != "" {
		t.Errorf("message = %q, want empty", result.Message)
	}
}

func TestService_CustomChain(t *testing.T) {
	svc := NewService(&CarelessClassifier{})
	result := svc.Diagnose(&ClassifyInput{Answer: 64, Guess: 63, ResponseTimeMs: 100})
	if result.Category != CategoryCareless {
		t.Errorf("got %q, want careless with speed-rush excluded", result.Category)
	}
}
