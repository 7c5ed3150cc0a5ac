package entities

import (
	"testing"
	"time"
)

func TestEndOfDayUTC(t *testing.T) {
	day := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.FixedZone("CST", -6*3600))
	got := EndOfDayUTC(day)

	want := time.Date(2026, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	almostMidnight := time.Date(2026, time.March, 15, 23, 59, 59, int(999*time.Millisecond)+500, time.UTC)
	if got.After(almostMidnight) {
		t.Fatalf("deadline leaked past its day: %v", got)
	}
	lateSubmission := time.Date(2026, time.March, 15, 23, 59, 59, int(500*time.Millisecond), time.UTC)
	if got.Before(lateSubmission) {
		t.Fatalf("deadline cut off the last day early: %v", got)
	}
}
