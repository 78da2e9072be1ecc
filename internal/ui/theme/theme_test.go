package theme

import "testing"

func TestTierBadge(t *testing.T) {
	for tier, want := range tierColors {
		if got := TierBadge(tier).GetBackground(); got != want {
			t.Errorf("TierBadge(%q) background = %v, want %v", tier, got, want)
		}
	}
	if got := TierBadge("impossible").GetBackground(); got != Primary {
		t.Errorf("unknown tier background = %v, want primary", got)
	}
}
