package diagnosis

import (
	"testing"

	"github.com/abhisek/mathquest/internal/problemgen"
)

func TestAllMisconceptions_Count(t *testing.T) {
	all := AllMisconceptions()
	if len(all) != 7 {
		t.Errorf("got %d misconceptions, want 7", len(all))
	}
}

func TestGetMisconception_Found(t *testing.T) {
	m := GetMisconception(problemgen.SlipSkippedConversion)
	if m == nil {
		t.Fatal("GetMisconception(skipped-conversion) returned nil")
	}
	if m.Label == "" {
		t.Error("label is empty")
	}
	if m.Description == "" {
		t.Error("description is empty")
	}
}

func TestGetMisconception_NotFound(t *testing.T) {
	m := GetMisconception("nonexistent")
	if m != nil {
		t.Errorf("GetMisconception(nonexistent) = %v, want nil", m)
	}
}

// Every slip a generator can produce must have learner-facing words.
func TestEveryGeneratedSlipIsRegistered(t *testing.T) {
	var slips []problemgen.Slip
	for _, tier := range problemgen.AllTiers() {
		slips = append(slips, problemgen.NewLevelQuestion(tier, 1).Slips...)
	}
	slips = append(slips, problemgen.NewMission(1).Slips...)
	slips = append(slips, problemgen.NewDailyQuestion("2024-01-01").Slips...)

	for _, s := range slips {
		if GetMisconception(s.ID) == nil {
			t.Errorf("slip %q has no misconception entry", s.ID)
		}
	}
}
