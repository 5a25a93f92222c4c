package timeutil

import (
	"testing"
	"time"
)

func TestParseDateValid(t *testing.T) {
	parsed, err := ParseDate("2024-11-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.November || parsed.Day() != 3 {
		t.Fatalf("unexpected parsed date: %v", parsed)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("11/03/2024"); err == nil {
		t.Fatal("expected error for non-canonical layout")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	moment := time.Date(2024, time.February, 9, 23, 15, 0, 0, time.UTC)
	if got := FormatDate(moment); got != "2024-02-09" {
		t.Fatalf("expected 2024-02-09, got %s", got)
	}
}

func TestCalculateDaysByDateToday(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	target := time.Date(2024, time.March, 5, 2, 0, 0, 0, time.UTC)

	window := CalculateDaysByDate(now, target)
	if window.DaysBack != 0 || window.DaysAhead != 0 {
		t.Fatalf("expected zero window for today, got %+v", window)
	}
}

func TestCalculateDaysByDateExactlyOneNonZero(t *testing.T) {
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	for offset := -5; offset <= 5; offset++ {
		target := now.AddDate(0, 0, offset)
		window := CalculateDaysByDate(now, target)
		if window.DaysBack < 0 || window.DaysAhead < 0 {
			t.Fatalf("negative field for offset %d: %+v", offset, window)
		}
		if window.DaysBack > 0 && window.DaysAhead > 0 {
			t.Fatalf("both fields non-zero for offset %d: %+v", offset, window)
		}
		switch {
		case offset < 0 && window.DaysBack != -offset:
			t.Fatalf("offset %d expected DaysBack %d, got %+v", offset, -offset, window)
		case offset > 0 && window.DaysAhead != offset:
			t.Fatalf("offset %d expected DaysAhead %d, got %+v", offset, offset, window)
		}
	}
}

func TestCalculateDaysByDateAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2024-03-10 is the US spring-forward date; the UTC offset changes
	// by an hour between now and the target.
	now := time.Date(2024, time.March, 9, 22, 0, 0, 0, loc)
	target := time.Date(2024, time.March, 11, 1, 0, 0, 0, loc)

	window := CalculateDaysByDate(now, target)
	if window.DaysAhead != 2 || window.DaysBack != 0 {
		t.Fatalf("expected 2 days ahead across DST, got %+v", window)
	}
}

func TestCalculateDaysByDateAcrossFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	now := time.Date(2024, time.November, 4, 9, 0, 0, 0, loc)
	target := time.Date(2024, time.November, 2, 23, 30, 0, 0, loc)

	window := CalculateDaysByDate(now, target)
	if window.DaysBack != 2 || window.DaysAhead != 0 {
		t.Fatalf("expected 2 days back across DST, got %+v", window)
	}
}

func TestCalculateDaysByDateMixedLocations(t *testing.T) {
	east := time.FixedZone("east", 2*3600)
	west := time.FixedZone("west", -7*3600)

	// The calendar-day boundary logic must hold when now and target carry
	// different fixed offsets.
	now := time.Date(2024, time.June, 1, 23, 0, 0, 0, west)
	target := time.Date(2024, time.June, 4, 1, 0, 0, 0, east)

	window := CalculateDaysByDate(now, target)
	if window.DaysAhead != 3 || window.DaysBack != 0 {
		t.Fatalf("expected 3 days ahead, got %+v", window)
	}
}
