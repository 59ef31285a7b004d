package selfcare

import (
	"testing"
	"time"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lib.Tips) != 30 {
		t.Fatalf("tips=%d", len(lib.Tips))
	}
	if len(lib.Meditations) != 5 || len(lib.Breathing) != 3 {
		t.Fatalf("meditations=%d breathing=%d", len(lib.Meditations), len(lib.Breathing))
	}
	for _, mood := range []string{"sad", "anxious", "stressed", "tired", "happy", "calm"} {
		if len(lib.QuickActivities[mood]) != 5 {
			t.Fatalf("%s has %d activities", mood, len(lib.QuickActivities[mood]))
		}
	}
}

func TestDailyTipRotatesByDayOfMonth(t *testing.T) {
	t.Parallel()
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	day1 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	day30 := time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC)
	day31 := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

	if got := lib.DailyTip(day1); got != lib.Tips[1] {
		t.Fatalf("day 1 tip=%q", got)
	}
	if got := lib.DailyTip(day30); got != lib.Tips[0] {
		t.Fatalf("day 30 should wrap to first tip, got %q", got)
	}
	if got := lib.DailyTip(day31); got != lib.Tips[1] {
		t.Fatalf("day 31 tip=%q", got)
	}
}

func TestActivitiesForFallsBackToCalm(t *testing.T) {
	t.Parallel()
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := lib.ActivitiesFor("angry")
	if len(got) == 0 || got[0].Title != "Meditation" {
		t.Fatalf("unexpected fallback %v", got)
	}
	if lib.ActivitiesFor("sad")[1].Title != "Call a Friend" {
		t.Fatalf("sad activities out of order")
	}
}

func TestParseRejectsIncompleteLibrary(t *testing.T) {
	t.Parallel()
	if _, err := Parse([]byte("tips: []\n")); err == nil {
		t.Fatalf("expected error for empty tips")
	}
	if _, err := Parse([]byte("tips: [a]\nquickActivities: {sad: []}\n")); err == nil {
		t.Fatalf("expected error for missing calm set")
	}
}
