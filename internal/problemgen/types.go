package problemgen

import (
	"fmt"
	"strings"
)

// Tier is one of the three fixed difficulty levels.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// AllTiers returns the tiers in display order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// ParseTier converts a case-insensitive tier name into a Tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierEasy:
		return TierEasy, nil
	case TierMedium:
		return TierMedium, nil
	case TierHard:
		return TierHard, nil
	}
	return "", fmt.Errorf("unknown tier %q", s)
}

// DisplayName returns the capitalized tier name.
func (t Tier) DisplayName() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Kind distinguishes leveled practice questions from missions.
type Kind string

const (
	KindLevel   Kind = "level"
	KindMission Kind = "mission"
	KindDaily   Kind = "daily"
)

// Status is the lifecycle of a question record.
//
//	unattempted --submit--> incorrect | correct
//	incorrect   --submit(correct)--> correct
//	correct is terminal
type Status int

const (
	StatusUnattempted Status = iota
	StatusIncorrect
	StatusCorrect
)

func (s Status) String() string {
	switch s {
	case StatusUnattempted:
		return "unattempted"
	case StatusIncorrect:
		return "completed-incorrect"
	case StatusCorrect:
		return "completed-correct"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Submit returns the status after a submission whose correctness is given.
func (s Status) Submit(correct bool) Status {
	if s == StatusCorrect || correct {
		return StatusCorrect
	}
	return StatusIncorrect
}

// Question is a generated question owned by a session.
type Question struct {
	// Kind is KindLevel or KindMission.
	Kind Kind

	// Tier is set for level questions only.
	Tier Tier

	// Index is the 1-based generator index.
	Index int

	// Text is the word problem displayed to the learner.
	Text string

	// Answer is the exact numeric answer. Hard-tier answers are non-integers.
	Answer float64

	// Hint is a fixed hint string for the question family.
	Hint string

	// Slips are wrong answers a known mistake would produce.
	Slips []Slip

	// Status tracks first completion and correctness.
	Status Status
}

// Completed reports whether the question has been submitted at least once.
func (q *Question) Completed() bool {
	return q.Status != StatusUnattempted
}

// Correct reports whether a correct answer has been submitted.
func (q *Question) Correct() bool {
	return q.Status == StatusCorrect
}

// DailyQuestion is the date-seeded challenge. It has no status; solved
// dates are tracked by the session.
type DailyQuestion struct {
	Date   string
	Text   string
	Answer float64
	Hint   string
	Slips  []Slip
}
