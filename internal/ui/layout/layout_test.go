package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestHeader(t *testing.T) {
	out := Header(Status{Screen: "Daily", Score: 42, Tier: "medium", DailyDone: true}, 90)
	for _, want := range []string{"MathQuest", "Daily", "MEDIUM", "daily ✓", "★ 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if w := lipgloss.Width(out); w != 90 {
		t.Errorf("header width = %d, want 90", w)
	}

	plain := Header(Status{Screen: "Home"}, 90)
	if strings.Contains(plain, "daily ✓") {
		t.Error("daily badge shown before the daily is solved")
	}
}

func TestFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "h", Description: "Hint"},
		{Key: "Esc", Description: "Back"},
	}

	wide := Footer(hints, 80)
	for _, h := range hints {
		if !strings.Contains(wide, h.Description) {
			t.Errorf("wide footer missing %q", h.Description)
		}
	}

	narrow := Footer(hints, 24)
	if !strings.Contains(narrow, "Submit") {
		t.Error("first hint should always fit")
	}
	if strings.Contains(narrow, "Back") {
		t.Error("last hint should be dropped when the bar is full")
	}
}

func TestFrame_FillsHeight(t *testing.T) {
	header := Header(Status{Screen: "Levels"}, 80)
	footer := Footer([]KeyHint{{Key: "q", Description: "Quit"}}, 80)

	out := Frame(header, "body", footer, 80, 30)
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
	if got := BodyHeight(header, footer, 30); got != 24 {
		t.Errorf("body height = %d, want 24", got)
	}
	if BodyHeight(header, footer, 4) != 0 {
		t.Error("body height should not go negative")
	}
}

func TestSizes(t *testing.T) {
	if !TooSmall(79, 40) || !TooSmall(100, 23) || TooSmall(80, 24) {
		t.Error("TooSmall thresholds are off")
	}
	if !Compact(21) || Compact(22) {
		t.Error("Compact threshold is off")
	}
	if !strings.Contains(SizeWarning(60, 20), "60×20") {
		t.Error("size warning should report the current size")
	}
}
