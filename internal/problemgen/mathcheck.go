package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator re-reads the numbers out of the question text and
// recomputes the answer, catching drift between a template and its formula.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

var (
	easyTextRe    = regexp.MustCompile(`had (\d+) candies and got (\d+) more`)
	mediumTextRe  = regexp.MustCompile(`sold (\d+) packs with (\d+) pens each, then sold (\d+) extra`)
	hardTextRe    = regexp.MustCompile(`travels (\d+) km at (\d+) km/h and takes a (\d+)-minute break`)
	missionTextRe = regexp.MustCompile(`buys (\d+) notebooks at \$(\d+) each and (\d+) marker packs at \$(\d+) each`)
)

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := recompute(q)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Ref: questionRef(q), Message: err.Error()}
	}
	if !IsCorrect(computed, q.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Ref:       questionRef(q),
			Message:   fmt.Sprintf("text implies %s but answer is %s", FormatAnswer(computed), FormatAnswer(q.Answer)),
		}
	}
	return nil
}

func recompute(q *Question) (float64, error) {
	var re *regexp.Regexp
	switch {
	case q.Kind == KindMission:
		re = missionTextRe
	case q.Tier == TierEasy:
		re = easyTextRe
	case q.Tier == TierMedium:
		re = mediumTextRe
	default:
		re = hardTextRe
	}

	m := re.FindStringSubmatch(q.Text)
	if m == nil {
		return 0, fmt.Errorf("text does not match the %s template", q.Kind)
	}
	n := make([]float64, 0, len(m)-1)
	for _, s := range m[1:] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		n = append(n, f)
	}

	switch {
	case q.Kind == KindMission:
		return n[0]*n[1] + n[2]*n[3], nil
	case q.Tier == TierEasy:
		return n[0] + n[1], nil
	case q.Tier == TierMedium:
		return n[0]*n[1] + n[2], nil
	default:
		if n[1] == 0 {
			return 0, fmt.Errorf("speed is zero")
		}
		return n[0]/n[1]*60 + n[2], nil
	}
}
