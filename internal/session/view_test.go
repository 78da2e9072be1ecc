package session

import (
	"testing"

	"github.com/abhisek/mathquest/internal/problemgen"
)

func TestProject_Initial(t *testing.T) {
	v := Project(New())

	if v.Score != 0 {
		t.Errorf("score = %d", v.Score)
	}
	if v.Level.Tier != problemgen.TierEasy || v.Level.TierName != "Easy" || v.Level.Number != 1 || v.Level.Total != 20 {
		t.Errorf("level = %+v", v.Level)
	}
	if v.Level.Status != "unattempted" {
		t.Errorf("level status = %q", v.Level.Status)
	}
	if v.Daily != nil {
		t.Errorf("daily = %+v, want nil", v.Daily)
	}
	if v.Mission.Number != 1 || v.Mission.Total != 100 || v.Mission.Completed != 0 {
		t.Errorf("mission = %+v", v.Mission)
	}
}

func TestProject_AfterPlay(t *testing.T) {
	s := New()
	s.MoveMission(1)
	if _, err := s.SubmitAnswer(s.CurrentMissionRef(), "1"); err != nil {
		t.Fatal(err)
	}
	s.LoadDaily("2024-01-01")
	s.SubmitDaily("2024-01-01", "414")

	v := Project(s)
	if v.Score != 2*CompletionPoints {
		t.Errorf("score = %d", v.Score)
	}
	if v.Mission.Number != 2 || v.Mission.Completed != 1 || v.Mission.Status != "completed-incorrect" {
		t.Errorf("mission = %+v", v.Mission)
	}
	if v.Daily == nil || !v.Daily.Solved || v.Daily.Date != "2024-01-01" {
		t.Errorf("daily = %+v", v.Daily)
	}
}

func TestFeedback(t *testing.T) {
	tests := []struct {
		name string
		kind problemgen.Kind
		res  SubmitResult
		want string
	}{
		{"rejected", problemgen.KindLevel, SubmitResult{}, ""},
		{"level correct", problemgen.KindLevel, SubmitResult{Accepted: true, Correct: true}, "Correct! Great job 🎉"},
		{"level wrong", problemgen.KindLevel, SubmitResult{Accepted: true, Answer: 234.1304347}, "Not correct. Answer: 234.13"},
		{"mission correct", problemgen.KindMission, SubmitResult{Accepted: true, Correct: true}, "Mission completed! 🚀"},
		{"mission wrong", problemgen.KindMission, SubmitResult{Accepted: true, Answer: 64}, "Not correct. Answer: 64"},
		{"daily correct", problemgen.KindDaily, SubmitResult{Accepted: true, Correct: true}, "Daily challenge solved! ✅"},
		{"daily wrong", problemgen.KindDaily, SubmitResult{Accepted: true, Answer: 414}, "Not yet. Correct answer: 414"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Feedback(tc.kind, tc.res); got != tc.want {
				t.Errorf("Feedback = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildSummary(t *testing.T) {
	s := New()
	q, _ := s.TierQuestion(problemgen.TierEasy, 0)
	s.SubmitAnswer(LevelRef(problemgen.TierEasy, 0), problemgen.FormatAnswer(q.Answer))
	s.SubmitAnswer(LevelRef(problemgen.TierEasy, 1), "0")
	s.SubmitAnswer(MissionRef(0), "0")
	s.SubmitDaily("2024-01-01", "414")

	sum := BuildSummary(s)
	easy := sum.Tiers[problemgen.TierEasy]
	if easy.Total != 20 || easy.Attempted != 2 || easy.Correct != 1 {
		t.Errorf("easy = %+v", easy)
	}
	if easy.Accuracy() != 0.5 {
		t.Errorf("easy accuracy = %v, want 0.5", easy.Accuracy())
	}
	if sum.Tiers[problemgen.TierHard].Accuracy() != 0 {
		t.Error("untouched tier should have zero accuracy")
	}
	if sum.Missions.Total != 100 || sum.Missions.Attempted != 1 {
		t.Errorf("missions = %+v", sum.Missions)
	}
	if sum.Correct() != 1 {
		t.Errorf("correct = %d, want 1", sum.Correct())
	}
	if sum.DailySolved != 1 || sum.Attempted() != 3 {
		t.Errorf("daily = %d attempted = %d", sum.DailySolved, sum.Attempted())
	}
	if sum.Score != 4*CompletionPoints {
		t.Errorf("score = %d", sum.Score)
	}
}
