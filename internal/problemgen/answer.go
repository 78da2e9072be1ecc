package problemgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the absolute difference under which a guess counts as correct.
const Tolerance = 0.001

// ErrInvalidGuess is returned when a guess is not a finite number.
var ErrInvalidGuess = errors.New("guess is not a number")

// ParseGuess parses the learner's input into a number.
//
// Normalization rules:
// - Whitespace is trimmed
// - Empty input is rejected
// - Leading "+" and trailing zeros are accepted ("+007.50" is 7.5)
// - Only decimal notation: hex ("0x1A"), digit separators, NaN and
//   infinities are rejected
func ParseGuess(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidGuess)
	}
	if strings.ContainsFunc(s, notDecimal) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidGuess, s)
	}
	return f, nil
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

// IsCorrect compares a guess against an answer using Tolerance.
func IsCorrect(guess, answer float64) bool {
	return math.Abs(guess-answer) < Tolerance
}

// FormatAnswer renders an answer for display: integers as-is, everything
// else rounded to at most two decimal places without trailing zeros.
func FormatAnswer(n float64) string {
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(n, 'f', 2, 64), 64)
	if err != nil {
		return strconv.FormatFloat(n, 'f', 2, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
