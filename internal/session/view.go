package session

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/problemgen"
)

// View is a read-only projection of a State for rendering.
type View struct {
	Score int `json:"score"`

	Level   LevelView   `json:"level"`
	Daily   *DailyView  `json:"daily,omitempty"`
	Mission MissionView `json:"mission"`
}

// LevelView describes the question under the tier cursor.
type LevelView struct {
	Tier     problemgen.Tier `json:"tier"`
	TierName string          `json:"tier_name"`
	Number   int             `json:"number"` // 1-based
	Total    int             `json:"total"`
	Text     string          `json:"text"`
	Status   string          `json:"status"`
}

// DailyView describes the loaded daily challenge.
type DailyView struct {
	Date   string `json:"date"`
	Text   string `json:"text"`
	Solved bool   `json:"solved"`
}

// MissionView describes the mission under the mission cursor.
type MissionView struct {
	Number    int    `json:"number"` // 1-based
	Total     int    `json:"total"`
	Text      string `json:"text"`
	Status    string `json:"status"`
	Completed int    `json:"completed"`
}

// Project builds the view model for s.
func Project(s *State) View {
	v := View{Score: s.score.Points()}

	set := s.levelSets[s.tier]
	if s.levelIndex < len(set) {
		q := set[s.levelIndex]
		v.Level = LevelView{
			Tier:     s.tier,
			TierName: s.tier.DisplayName(),
			Number:   s.levelIndex + 1,
			Total:    len(set),
			Text:     q.Text,
			Status:   q.Status.String(),
		}
	}

	if s.daily != nil {
		v.Daily = &DailyView{
			Date:   s.daily.Date,
			Text:   s.daily.Text,
			Solved: s.dailySolve[s.daily.Date],
		}
	}

	if s.missionIndex < len(s.missions) {
		m := s.missions[s.missionIndex]
		v.Mission = MissionView{
			Number:    s.missionIndex + 1,
			Total:     len(s.missions),
			Text:      m.Text,
			Status:    m.Status.String(),
			Completed: s.MissionsCompleted(),
		}
	}

	return v
}

// Feedback returns the message shown after an accepted submission.
func Feedback(kind problemgen.Kind, res SubmitResult) string {
	if !res.Accepted {
		return ""
	}
	answer := problemgen.FormatAnswer(res.Answer)
	switch kind {
	case problemgen.KindDaily:
		if res.Correct {
			return "Daily challenge solved! ✅"
		}
		return fmt.Sprintf("Not yet. Correct answer: %s", answer)
	case problemgen.KindMission:
		if res.Correct {
			return "Mission completed! 🚀"
		}
	default:
		if res.Correct {
			return "Correct! Great job 🎉"
		}
	}
	return fmt.Sprintf("Not correct. Answer: %s", answer)
}
