package session

const (
	// CompletionPoints is awarded once per question, on first completion.
	CompletionPoints = 5

	// HintCost is deducted every time a hint is revealed.
	HintCost = 10
)

// Score is a point balance that never drops below zero.
type Score struct {
	points int
}

// Add applies delta and clamps the result at zero. Clamping happens on every
// call, so a deduction below zero is not remembered by later additions.
func (s *Score) Add(delta int) int {
	s.points = max(0, s.points+delta)
	return s.points
}

// Points returns the current balance.
func (s *Score) Points() int {
	return s.points
}

// CanAfford reports whether cost points are available.
func (s *Score) CanAfford(cost int) bool {
	return s.points >= cost
}
