package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/mathquest/internal/problemgen"
)

var (
	// ErrUnknownTier is returned for a tier outside easy/medium/hard.
	ErrUnknownTier = errors.New("unknown tier")

	// ErrIndexOutOfRange is returned for a question or mission index outside its list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoDaily is returned when a daily ref does not match a loaded daily question.
	ErrNoDaily = errors.New("daily challenge not loaded")
)

// State is the quiz session. It is owned by a single caller and is not safe
// for concurrent use.
type State struct {
	score Score

	tier       problemgen.Tier
	levelIndex int
	levelSets  map[problemgen.Tier][]problemgen.Question

	daily      *problemgen.DailyQuestion
	dailySolve map[string]bool

	missionIndex int
	missions     []problemgen.Question
}

// New creates a session with freshly generated question sets, starting on
// the easy tier with a zero score.
func New() *State {
	sets := make(map[problemgen.Tier][]problemgen.Question, len(problemgen.AllTiers()))
	for _, t := range problemgen.AllTiers() {
		sets[t] = problemgen.CreateLevelQuestions(t)
	}
	return &State{
		tier:       problemgen.TierEasy,
		levelSets:  sets,
		dailySolve: make(map[string]bool),
		missions:   problemgen.CreateMissions(problemgen.MissionsCount),
	}
}

// Ref identifies a question owned by a State.
type Ref struct {
	Kind  problemgen.Kind
	Tier  problemgen.Tier
	Index int    // 0-based, level and mission refs
	Date  string // daily refs
}

// LevelRef refers to the index-th (0-based) question of a tier.
func LevelRef(tier problemgen.Tier, index int) Ref {
	return Ref{Kind: problemgen.KindLevel, Tier: tier, Index: index}
}

// MissionRef refers to the index-th (0-based) mission.
func MissionRef(index int) Ref {
	return Ref{Kind: problemgen.KindMission, Index: index}
}

// DailyRef refers to the daily challenge for date.
func DailyRef(date string) Ref {
	return Ref{Kind: problemgen.KindDaily, Date: date}
}

func (r Ref) String() string {
	switch r.Kind {
	case problemgen.KindLevel:
		return fmt.Sprintf("%s#%d", r.Tier, r.Index+1)
	case problemgen.KindMission:
		return fmt.Sprintf("mission#%d", r.Index+1)
	case problemgen.KindDaily:
		return "daily@" + r.Date
	default:
		return string(r.Kind)
	}
}

// resolve returns a pointer to the question record a level or mission ref names.
func (s *State) resolve(ref Ref) (*problemgen.Question, error) {
	switch ref.Kind {
	case problemgen.KindLevel:
		set, ok := s.levelSets[ref.Tier]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTier, ref.Tier)
		}
		if ref.Index < 0 || ref.Index >= len(set) {
			return nil, fmt.Errorf("%w: %s question %d", ErrIndexOutOfRange, ref.Tier, ref.Index+1)
		}
		return &set[ref.Index], nil
	case problemgen.KindMission:
		if ref.Index < 0 || ref.Index >= len(s.missions) {
			return nil, fmt.Errorf("%w: mission %d", ErrIndexOutOfRange, ref.Index+1)
		}
		return &s.missions[ref.Index], nil
	}
	return nil, fmt.Errorf("cannot resolve %s ref", ref.Kind)
}

// TierQuestion returns a copy of the index-th (0-based) question of a tier.
func (s *State) TierQuestion(tier problemgen.Tier, index int) (problemgen.Question, error) {
	q, err := s.resolve(LevelRef(tier, index))
	if err != nil {
		return problemgen.Question{}, err
	}
	return snapshot(*q), nil
}

// Mission returns a copy of the index-th (0-based) mission.
func (s *State) Mission(index int) (problemgen.Question, error) {
	q, err := s.resolve(MissionRef(index))
	if err != nil {
		return problemgen.Question{}, err
	}
	return snapshot(*q), nil
}

// Daily returns a copy of the loaded daily question, or nil before the first load.
func (s *State) Daily() *problemgen.DailyQuestion {
	if s.daily == nil {
		return nil
	}
	d := *s.daily
	d.Slips = slices.Clone(d.Slips)
	return &d
}

// snapshot detaches q from the session's backing slices.
func snapshot(q problemgen.Question) problemgen.Question {
	q.Slips = slices.Clone(q.Slips)
	return q
}

// CurrentScore returns the point balance.
func (s *State) CurrentScore() int {
	return s.score.Points()
}

// Tier returns the active tier.
func (s *State) Tier() problemgen.Tier {
	return s.tier
}

// LevelIndex returns the 0-based cursor into the active tier.
func (s *State) LevelIndex() int {
	return s.levelIndex
}

// MissionIndex returns the 0-based mission cursor.
func (s *State) MissionIndex() int {
	return s.missionIndex
}

// CurrentLevelRef refers to the question under the tier cursor.
func (s *State) CurrentLevelRef() Ref {
	return LevelRef(s.tier, s.levelIndex)
}

// CurrentMissionRef refers to the mission under the mission cursor.
func (s *State) CurrentMissionRef() Ref {
	return MissionRef(s.missionIndex)
}

// DailySolved reports whether the daily challenge for date has been submitted.
func (s *State) DailySolved(date string) bool {
	return s.dailySolve[date]
}

// MissionsCompleted counts missions that have been submitted at least once.
func (s *State) MissionsCompleted() int {
	n := 0
	for i := range s.missions {
		if s.missions[i].Completed() {
			n++
		}
	}
	return n
}
