package problemgen

import (
	"fmt"
	"unicode/utf16"
)

// QuestionsPerLevel is the fixed size of every tier's question list.
const QuestionsPerLevel = 20

// MissionsCount is the number of missions built at startup.
const MissionsCount = 100

const (
	easyHint    = "Add the two numbers."
	mediumHint  = "Multiply packs by pens per pack, then add extras."
	hardHint    = "Time = distance ÷ speed; convert hours to minutes; add break."
	dailyHint   = "Find juice revenue and pastry revenue separately, then sum."
	missionHint = "Multiply each item count by its price, then add both totals."
)

// NewLevelQuestion generates the i-th (1-based) question for a tier.
// Unknown tiers fall through to the hard generator.
func NewLevelQuestion(tier Tier, i int) Question {
	switch tier {
	case TierEasy:
		return easyQuestion(i)
	case TierMedium:
		return mediumQuestion(i)
	default:
		return hardQuestion(i)
	}
}

func easyQuestion(i int) Question {
	a := 4 + i
	b := 2 + i%6
	return Question{
		Kind:   KindLevel,
		Tier:   TierEasy,
		Index:  i,
		Text:   fmt.Sprintf("Easy Q%d: Sam had %d candies and got %d more. How many candies now?", i, a, b),
		Answer: float64(a + b),
		Hint:   easyHint,
		Slips:  []Slip{{SlipSubtracted, float64(a - b)}},
	}
}

func mediumQuestion(i int) Question {
	packs := 3 + i%8
	each := 6 + i
	extra := 5 + i%10
	return Question{
		Kind:   KindLevel,
		Tier:   TierMedium,
		Index:  i,
		Text:   fmt.Sprintf("Medium Q%d: A shop sold %d packs with %d pens each, then sold %d extra pens. How many pens in total?", i, packs, each, extra),
		Answer: float64(packs*each + extra),
		Hint:   mediumHint,
		Slips: []Slip{
			{SlipSkippedExtra, float64(packs * each)},
			{SlipAddedProduct, float64(packs + each + extra)},
		},
	}
}

func hardQuestion(i int) Question {
	distance := 80 + i*4
	speed := 20 + (i%9)*3
	breakMin := 10 + (i%5)*5
	hours := float64(distance) / float64(speed)
	return Question{
		Kind:   KindLevel,
		Tier:   TierHard,
		Index:  i,
		Text:   fmt.Sprintf("Hard Q%d: A bus travels %d km at %d km/h and takes a %d-minute break. What is total trip time in minutes?", i, distance, speed, breakMin),
		Answer: hours*60 + float64(breakMin),
		Hint:   hardHint,
		Slips: []Slip{
			{SlipSkippedBreak, hours * 60},
			{SlipSkippedConversion, hours + float64(breakMin)},
		},
	}
}

// NewMission generates the i-th (1-based) mission.
func NewMission(i int) Question {
	a := 10 + i
	b := 4 + i%12
	c := 2 + i%7
	return Question{
		Kind:   KindMission,
		Index:  i,
		Text:   fmt.Sprintf("Mission %d: A school buys %d notebooks at $%d each and %d marker packs at $3 each. What is the total cost?", i, a, b, c),
		Answer: float64(a*b + c*3),
		Hint:   missionHint,
		Slips: []Slip{
			{SlipSkippedSecondItem, float64(a * b)},
			{SlipSkippedFirstItem, float64(c * 3)},
		},
	}
}

// NewDailyQuestion builds the challenge for a date key. The same key always
// yields the same question.
func NewDailyQuestion(date string) DailyQuestion {
	seed := DailySeed(date)
	x := 10 + seed%35
	y := 3 + seed%9
	z := 2 + seed%6
	return DailyQuestion{
		Date:   date,
		Text:   fmt.Sprintf("For %s, a café sells %d juices at $%d each and %d pastries at $4 each. What is the total amount earned?", date, x, y, z),
		Answer: float64(x*y + z*4),
		Hint:   dailyHint,
		Slips: []Slip{
			{SlipSkippedSecondItem, float64(x * y)},
			{SlipSkippedFirstItem, float64(z * 4)},
		},
	}
}

// DailySeed sums one UTF-16 unit per code point of s: the code point itself
// inside the BMP, its high surrogate above it.
func DailySeed(s string) int {
	seed := 0
	for _, r := range s {
		if r < 0x10000 {
			seed += int(r)
			continue
		}
		hi, _ := utf16.EncodeRune(r)
		seed += int(hi)
	}
	return seed
}

// CreateLevelQuestions builds the full question list for a tier.
func CreateLevelQuestions(tier Tier) []Question {
	qs := make([]Question, 0, QuestionsPerLevel)
	for i := 1; i <= QuestionsPerLevel; i++ {
		qs = append(qs, NewLevelQuestion(tier, i))
	}
	return qs
}

// CreateMissions builds missions 1..n.
func CreateMissions(n int) []Question {
	ms := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		ms = append(ms, NewMission(i))
	}
	return ms
}
