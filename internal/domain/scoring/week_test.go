package scoring

import (
	"testing"
	"time"
)

func TestWeekID(t *testing.T) {
	// 2024-01-29 is a Monday in ISO week 5.
	id := WeekID(time.Date(2024, 1, 29, 12, 0, 0, 0, time.UTC))
	if id != "2024-W05" {
		t.Fatalf("expected 2024-W05, got %s", id)
	}
}

func TestWeekRoundTrip(t *testing.T) {
	start, err := WeekStart("2024-W05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %s", start.Weekday())
	}
	if id := WeekID(start); id != "2024-W05" {
		t.Fatalf("round trip failed: got %s", id)
	}
}

func TestWeekStartInvalid(t *testing.T) {
	if _, err := WeekStart("not-a-week"); err == nil {
		t.Fatal("expected error for malformed identifier")
	}
	if _, err := WeekStart("2024-W99"); err == nil {
		t.Fatal("expected error for out-of-range week")
	}
}

func TestRecentWeeks(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) // ISO week 5
	weeks := RecentWeeks(now, 3)
	expected := []string{"2024-W03", "2024-W04", "2024-W05"}
	if len(weeks) != len(expected) {
		t.Fatalf("expected %d weeks, got %d", len(expected), len(weeks))
	}
	for i := range expected {
		if weeks[i] != expected[i] {
			t.Fatalf("expected %s at index %d, got %s", expected[i], i, weeks[i])
		}
	}
}

func TestRecentWeeksMinimum(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	weeks := RecentWeeks(now, 0)
	if len(weeks) != 1 || weeks[0] != "2024-W05" {
		t.Fatalf("expected current week only, got %v", weeks)
	}
}
