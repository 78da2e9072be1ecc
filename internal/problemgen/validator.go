package problemgen

import (
	"fmt"
	"math"
)

// Validator checks a generated question for consistency.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Ref       string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s: %s", e.Validator, e.Ref, e.Message)
}

// DefaultValidators is the chain run by ValidateAll when none is given.
func DefaultValidators() []Validator {
	return []Validator{&StructuralValidator{}, &MathCheckValidator{}}
}

// ValidateAll runs validators over qs and collects every failure.
func ValidateAll(qs []Question, validators ...Validator) []*ValidationError {
	if len(validators) == 0 {
		validators = DefaultValidators()
	}
	var errs []*ValidationError
	for i := range qs {
		for _, v := range validators {
			if verr := v.Validate(&qs[i]); verr != nil {
				errs = append(errs, verr)
			}
		}
	}
	return errs
}

func questionRef(q *Question) string {
	if q.Kind == KindMission {
		return fmt.Sprintf("mission %d", q.Index)
	}
	return fmt.Sprintf("%s Q%d", q.Tier, q.Index)
}

// StructuralValidator checks that required fields are present and within limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Ref: questionRef(q), Message: msg}
	}
	switch q.Kind {
	case KindLevel:
		if _, err := ParseTier(string(q.Tier)); err != nil {
			return fail(fmt.Sprintf("unknown tier %q", q.Tier))
		}
		if q.Index < 1 || q.Index > QuestionsPerLevel {
			return fail(fmt.Sprintf("index %d outside 1..%d", q.Index, QuestionsPerLevel))
		}
	case KindMission:
		if q.Index < 1 {
			return fail(fmt.Sprintf("index %d must be positive", q.Index))
		}
	default:
		return fail(fmt.Sprintf("unexpected kind %q", q.Kind))
	}
	if q.Text == "" {
		return fail("text is empty")
	}
	if len(q.Text) > 500 {
		return fail("text exceeds 500 characters")
	}
	if q.Hint == "" {
		return fail("hint is empty")
	}
	if math.IsNaN(q.Answer) || math.IsInf(q.Answer, 0) || q.Answer <= 0 {
		return fail(fmt.Sprintf("answer %v is not a positive finite number", q.Answer))
	}
	return nil
}
