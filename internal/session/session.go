package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathquest/internal/problemgen"
)

// SubmitResult reports the outcome of an answer submission.
type SubmitResult struct {
	// Accepted is false when the guess could not be parsed or the daily
	// date is invalid; nothing changed.
	Accepted bool

	// Correct is true when the guess matched within problemgen.Tolerance.
	Correct bool

	// FirstCompletion is true when this submission completed the question.
	FirstCompletion bool

	// AwardedPoints is the score delta applied by this submission.
	AwardedPoints int

	// Guess is the parsed guess (zero when not accepted).
	Guess float64

	// Answer is the correct answer, for feedback.
	Answer float64

	// Score is the balance after the submission.
	Score int
}

// HintResult reports the outcome of a hint request.
type HintResult struct {
	Granted  bool
	HintText string
	Message  string
	Score    int
}

const (
	hintDeclinedMessage = "Not enough points for a hint. You need 10 points."
	hintGrantedMessage  = "Hint unlocked (-10 points)."
)

// SelectTier switches the active tier and rewinds its cursor.
func (s *State) SelectTier(tier problemgen.Tier) error {
	if _, ok := s.levelSets[tier]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	s.tier = tier
	s.levelIndex = 0
	return nil
}

// Navigate moves cursor by direction and clamps it to [0, boundMax].
func Navigate(cursor, direction, boundMax int) int {
	return min(max(cursor+direction, 0), boundMax)
}

// MoveLevel moves the tier cursor by direction and returns the new cursor.
func (s *State) MoveLevel(direction int) int {
	s.levelIndex = Navigate(s.levelIndex, direction, len(s.levelSets[s.tier])-1)
	return s.levelIndex
}

// MoveMission moves the mission cursor by direction and returns the new cursor.
func (s *State) MoveMission(direction int) int {
	s.missionIndex = Navigate(s.missionIndex, direction, len(s.missions)-1)
	return s.missionIndex
}

// SubmitAnswer records a guess for a level, mission or daily question.
// Points are awarded once, on first completion, whether or not the guess is
// correct. A later correct guess still marks the question correct.
func (s *State) SubmitAnswer(ref Ref, guessText string) (SubmitResult, error) {
	if ref.Kind == problemgen.KindDaily {
		return s.SubmitDaily(ref.Date, guessText), nil
	}

	q, err := s.resolve(ref)
	if err != nil {
		return SubmitResult{}, err
	}

	guess, err := problemgen.ParseGuess(guessText)
	if err != nil {
		return SubmitResult{Score: s.score.Points()}, nil
	}

	res := SubmitResult{
		Accepted:        true,
		Correct:         problemgen.IsCorrect(guess, q.Answer),
		FirstCompletion: !q.Completed(),
		Guess:           guess,
		Answer:          q.Answer,
	}
	q.Status = q.Status.Submit(res.Correct)
	if res.FirstCompletion {
		res.AwardedPoints = s.award(CompletionPoints)
	}
	res.Score = s.score.Points()
	return res, nil
}

// SubmitDaily records a guess for the daily challenge of dateKey. The first
// submission for a date earns points regardless of correctness. A dateKey
// that is not a real YYYY-MM-DD date is not accepted.
func (s *State) SubmitDaily(dateKey, guessText string) SubmitResult {
	if !problemgen.ValidDate(dateKey) {
		return SubmitResult{Score: s.score.Points()}
	}
	guess, err := problemgen.ParseGuess(guessText)
	if err != nil {
		return SubmitResult{Score: s.score.Points()}
	}

	daily := s.daily
	if daily == nil || daily.Date != dateKey {
		d := problemgen.NewDailyQuestion(dateKey)
		daily = &d
	}

	res := SubmitResult{
		Accepted:        true,
		Correct:         problemgen.IsCorrect(guess, daily.Answer),
		FirstCompletion: !s.dailySolve[dateKey],
		Guess:           guess,
		Answer:          daily.Answer,
	}
	if res.FirstCompletion {
		s.dailySolve[dateKey] = true
		res.AwardedPoints = s.award(CompletionPoints)
	}
	res.Score = s.score.Points()
	return res
}

// UseHint reveals the hint for ref at a cost of HintCost points. The request
// is declined, with state unchanged, when the balance is below HintCost.
// Nothing prevents paying for the same hint repeatedly.
func (s *State) UseHint(ref Ref) (HintResult, error) {
	hint, err := s.hintFor(ref)
	if err != nil {
		return HintResult{}, err
	}
	if !s.score.CanAfford(HintCost) {
		return HintResult{Message: hintDeclinedMessage, Score: s.score.Points()}, nil
	}
	s.score.Add(-HintCost)
	return HintResult{
		Granted:  true,
		HintText: hint,
		Message:  hintGrantedMessage,
		Score:    s.score.Points(),
	}, nil
}

func (s *State) hintFor(ref Ref) (string, error) {
	if ref.Kind == problemgen.KindDaily {
		if s.daily == nil || (ref.Date != "" && s.daily.Date != ref.Date) {
			return "", fmt.Errorf("%w: %q", ErrNoDaily, ref.Date)
		}
		return s.daily.Hint, nil
	}
	q, err := s.resolve(ref)
	if err != nil {
		return "", err
	}
	return q.Hint, nil
}

// LoadDaily generates the daily challenge for dateKey and makes it current,
// replacing any previously loaded daily question.
func (s *State) LoadDaily(dateKey string) problemgen.DailyQuestion {
	d := problemgen.NewDailyQuestion(dateKey)
	s.daily = &d
	out := d
	out.Slips = slices.Clone(d.Slips)
	return out
}

// award adds points and returns the delta actually applied.
func (s *State) award(points int) int {
	before := s.score.Points()
	return s.score.Add(points) - before
}
