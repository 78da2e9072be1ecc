package session

import "github.com/abhisek/mathquest/internal/problemgen"

// Progress counts submissions for one question list.
type Progress struct {
	Total     int
	Attempted int
	Correct   int
}

// Accuracy is Correct / Attempted, or 0 before any attempt.
func (p Progress) Accuracy() float64 {
	if p.Attempted == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Attempted)
}

func (p *Progress) record(q *problemgen.Question) {
	p.Total++
	if q.Completed() {
		p.Attempted++
	}
	if q.Correct() {
		p.Correct++
	}
}

// Summary holds the data shown when a session ends.
type Summary struct {
	Score       int
	Tiers       map[problemgen.Tier]Progress
	Missions    Progress
	DailySolved int
}

// Attempted sums attempted level questions and missions.
func (s *Summary) Attempted() int {
	n := s.Missions.Attempted
	for _, p := range s.Tiers {
		n += p.Attempted
	}
	return n
}

// BuildSummary tallies the current session state.
func BuildSummary(s *State) *Summary {
	sum := &Summary{
		Score: s.score.Points(),
		Tiers: make(map[problemgen.Tier]Progress, len(s.levelSets)),
	}
	for tier, set := range s.levelSets {
		var p Progress
		for i := range set {
			p.record(&set[i])
		}
		sum.Tiers[tier] = p
	}
	for i := range s.missions {
		sum.Missions.record(&s.missions[i])
	}
	for _, solved := range s.dailySolve {
		if solved {
			sum.DailySolved++
		}
	}
	return sum
}

// Correct sums correctly answered level questions and missions.
func (s *Summary) Correct() int {
	n := s.Missions.Correct
	for _, p := range s.Tiers {
		n += p.Correct
	}
	return n
}
