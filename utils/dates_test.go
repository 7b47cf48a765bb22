package utils

import (
	"testing"
	"time"
)

func TestParseBookingDate(t *testing.T) {
	day, err := ParseBookingDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseBookingDate failed: %v", err)
	}
	if day.Year() != 2024 || day.Month() != time.June || day.Day() != 1 {
		t.Errorf("parsed wrong date: %v", day)
	}

	for _, bad := range []string{"", "next tuesday", "01/06/2024", "2024-13-01"} {
		if _, err := ParseBookingDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 1, 15, 42, 7, 12345, time.UTC)
	got := BeginningOfDay(ts)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("BeginningOfDay(%v) = %v, want %v", ts, got, want)
	}
}
