package problemgen

// SlipID names a known mistake for a question family.
type SlipID string

const (
	SlipSubtracted        SlipID = "subtracted"
	SlipSkippedExtra      SlipID = "skipped-extra"
	SlipAddedProduct      SlipID = "added-product"
	SlipSkippedBreak      SlipID = "skipped-break"
	SlipSkippedConversion SlipID = "skipped-conversion"
	SlipSkippedFirstItem  SlipID = "skipped-first-item"
	SlipSkippedSecondItem SlipID = "skipped-second-item"
)

// Slip is the answer a learner reaches by making mistake ID.
type Slip struct {
	ID     SlipID
	Answer float64
}

// MatchSlip returns the first slip whose answer matches guess within
// Tolerance. Slips that coincide with the correct answer never match.
func MatchSlip(slips []Slip, guess, answer float64) (Slip, bool) {
	for _, s := range slips {
		if IsCorrect(s.Answer, answer) {
			continue
		}
		if IsCorrect(guess, s.Answer) {
			return s, true
		}
	}
	return Slip{}, false
}
