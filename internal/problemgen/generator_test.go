package problemgen

import (
	"math"
	"strings"
	"testing"
)

func TestCreateLevelQuestions_Sizes(t *testing.T) {
	for _, tier := range AllTiers() {
		qs := CreateLevelQuestions(tier)
		if len(qs) != QuestionsPerLevel {
			t.Fatalf("%s: got %d questions, want %d", tier, len(qs), QuestionsPerLevel)
		}
		for i, q := range qs {
			if q.Index != i+1 {
				t.Errorf("%s[%d]: index = %d, want %d", tier, i, q.Index, i+1)
			}
			if q.Tier != tier || q.Kind != KindLevel {
				t.Errorf("%s[%d]: tier/kind = %s/%s", tier, i, q.Tier, q.Kind)
			}
			if q.Status != StatusUnattempted {
				t.Errorf("%s[%d]: status = %s, want unattempted", tier, i, q.Status)
			}
			if q.Answer < 0 {
				t.Errorf("%s[%d]: negative answer %v", tier, i, q.Answer)
			}
			if q.Hint == "" {
				t.Errorf("%s[%d]: empty hint", tier, i)
			}
		}
	}
}

func TestLevelFormulas(t *testing.T) {
	for i := 1; i <= QuestionsPerLevel; i++ {
		easy := NewLevelQuestion(TierEasy, i)
		if want := float64((4 + i) + (2 + i%6)); easy.Answer != want {
			t.Errorf("easy %d: answer = %v, want %v", i, easy.Answer, want)
		}

		medium := NewLevelQuestion(TierMedium, i)
		if want := float64((3+i%8)*(6+i) + (5 + i%10)); medium.Answer != want {
			t.Errorf("medium %d: answer = %v, want %v", i, medium.Answer, want)
		}

		hard := NewLevelQuestion(TierHard, i)
		want := float64(80+4*i)/float64(20+(i%9)*3)*60 + float64(10+(i%5)*5)
		if math.Abs(hard.Answer-want) > 1e-9 {
			t.Errorf("hard %d: answer = %v, want %v", i, hard.Answer, want)
		}
	}
}

func TestEasyText(t *testing.T) {
	q := NewLevelQuestion(TierEasy, 1)
	want := "Easy Q1: Sam had 5 candies and got 3 more. How many candies now?"
	if q.Text != want {
		t.Errorf("text = %q, want %q", q.Text, want)
	}
	if q.Answer != 8 {
		t.Errorf("answer = %v, want 8", q.Answer)
	}
}

func TestHardQuestionOne(t *testing.T) {
	q := NewLevelQuestion(TierHard, 1)
	if !strings.Contains(q.Text, "84 km at 23 km/h") || !strings.Contains(q.Text, "15-minute break") {
		t.Errorf("unexpected text: %q", q.Text)
	}
	want := 84.0/23.0*60 + 15
	if math.Abs(q.Answer-want) > 1e-9 {
		t.Errorf("answer = %v, want %v", q.Answer, want)
	}
	if got := FormatAnswer(q.Answer); got != "234.13" {
		t.Errorf("formatted = %q, want 234.13", got)
	}
}

func TestHardQuestionSpeedWraps(t *testing.T) {
	// i mod 9 == 0 resets the speed to 20 km/h.
	q := NewLevelQuestion(TierHard, 9)
	if !strings.Contains(q.Text, "116 km at 20 km/h") {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Answer != 116.0/20.0*60+30 {
		t.Errorf("answer = %v", q.Answer)
	}
}

func TestCreateMissions(t *testing.T) {
	ms := CreateMissions(MissionsCount)
	if len(ms) != MissionsCount {
		t.Fatalf("got %d missions, want %d", len(ms), MissionsCount)
	}
	for idx, m := range ms {
		i := idx + 1
		a, b, c := 10+i, 4+i%12, 2+i%7
		if m.Answer != float64(a*b+c*3) {
			t.Errorf("mission %d: answer = %v, want %d", i, m.Answer, a*b+c*3)
		}
		if m.Kind != KindMission || m.Index != i {
			t.Errorf("mission %d: kind/index = %s/%d", i, m.Kind, m.Index)
		}
	}
	first := ms[0]
	want := "Mission 1: A school buys 11 notebooks at $5 each and 3 marker packs at $3 each. What is the total cost?"
	if first.Text != want {
		t.Errorf("text = %q, want %q", first.Text, want)
	}
}

func TestDailySeed(t *testing.T) {
	if got := DailySeed("2024-01-01"); got != 484 {
		t.Errorf("DailySeed = %d, want 484", got)
	}
	if got := DailySeed(""); got != 0 {
		t.Errorf("DailySeed(empty) = %d, want 0", got)
	}
	// U+1F600 counts as its high surrogate 0xD83D only.
	if got := DailySeed("a\U0001F600"); got != 97+0xD83D {
		t.Errorf("DailySeed(astral) = %d, want %d", got, 97+0xD83D)
	}
}

func TestNewDailyQuestion(t *testing.T) {
	q := NewDailyQuestion("2024-01-01")
	if q.Date != "2024-01-01" {
		t.Errorf("date = %q", q.Date)
	}
	// seed 484: x=39, y=10, z=6.
	if q.Answer != 414 {
		t.Errorf("answer = %v, want 414", q.Answer)
	}
	want := "For 2024-01-01, a café sells 39 juices at $10 each and 6 pastries at $4 each. What is the total amount earned?"
	if q.Text != want {
		t.Errorf("text = %q, want %q", q.Text, want)
	}
}

func TestNewDailyQuestion_Deterministic(t *testing.T) {
	dates := []string{"2024-01-01", "2025-12-31", "2026-10-16", "not-a-date"}
	for _, d := range dates {
		a := NewDailyQuestion(d)
		b := NewDailyQuestion(d)
		if a.Text != b.Text || a.Answer != b.Answer {
			t.Errorf("%s: questions differ: %+v vs %+v", d, a, b)
		}
	}
	if NewDailyQuestion("2024-01-01").Text == NewDailyQuestion("2024-01-02").Text {
		t.Error("expected different dates to produce different text")
	}
}

func TestParseTier(t *testing.T) {
	for _, in := range []string{"easy", "EASY", " Medium ", "hard"} {
		if _, err := ParseTier(in); err != nil {
			t.Errorf("ParseTier(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := ParseTier("expert"); err == nil {
		t.Error("expected error for unknown tier")
	}
	if got := TierMedium.DisplayName(); got != "Medium" {
		t.Errorf("DisplayName = %q, want Medium", got)
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-1-1", false},
		{"2024-13-01", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := ValidDate(tc.in); got != tc.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if !ValidDate(Today()) {
		t.Errorf("Today() = %q is not a valid key", Today())
	}
}

func TestSlips(t *testing.T) {
	easy := NewLevelQuestion(TierEasy, 1)
	if len(easy.Slips) != 1 || easy.Slips[0].Answer != 2 {
		t.Errorf("easy slips = %+v, want subtracted 5-3", easy.Slips)
	}

	hard := NewLevelQuestion(TierHard, 1)
	s, ok := MatchSlip(hard.Slips, 219.13, hard.Answer)
	if !ok || s.ID != SlipSkippedBreak {
		t.Errorf("MatchSlip(219.13) = %+v, %v; want skipped-break", s, ok)
	}

	m := NewMission(1)
	if s, ok := MatchSlip(m.Slips, 55, m.Answer); !ok || s.ID != SlipSkippedSecondItem {
		t.Errorf("mission MatchSlip(55) = %+v, %v", s, ok)
	}
	if _, ok := MatchSlip(m.Slips, m.Answer, m.Answer); ok {
		t.Error("the correct answer matched a slip")
	}

	d := NewDailyQuestion("2024-01-01")
	if s, ok := MatchSlip(d.Slips, 390, d.Answer); !ok || s.ID != SlipSkippedSecondItem {
		t.Errorf("daily MatchSlip(390) = %+v, %v", s, ok)
	}
}
