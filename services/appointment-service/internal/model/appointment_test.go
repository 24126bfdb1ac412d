package model

import (
	"testing"
	"time"
)

func TestPast(t *testing.T) {
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

	if Past(date, date.Add(-time.Second)) {
		t.Fatal("appointment should not be past before its date")
	}
	if Past(date, date) {
		t.Fatal("appointment should not be past at exactly its date")
	}
	if !Past(date, date.Add(time.Second)) {
		t.Fatal("appointment should be past after its date")
	}
}

func TestCancelableBoundary(t *testing.T) {
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	deadline := date.Add(-2 * time.Hour)

	if !Cancelable(date, deadline.Add(-time.Second)) {
		t.Fatal("expected cancelable one second before the deadline")
	}
	if Cancelable(date, deadline) {
		t.Fatal("expected not cancelable at exactly the deadline")
	}
	if Cancelable(date, deadline.Add(time.Second)) {
		t.Fatal("expected not cancelable after the deadline")
	}
	if Cancelable(date, date.Add(time.Hour)) {
		t.Fatal("expected not cancelable for a past appointment")
	}
}

func TestCancelableScenario(t *testing.T) {
	// Appointment at 14:00; 11:59 leaves 2h01m of notice, 12:01 only 1h59m.
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

	if !Cancelable(date, time.Date(2024, 1, 10, 11, 59, 0, 0, time.UTC)) {
		t.Fatal("expected cancelable with 2h01m notice")
	}
	if Cancelable(date, time.Date(2024, 1, 10, 12, 1, 0, 0, time.UTC)) {
		t.Fatal("expected not cancelable with 1h59m notice")
	}
}
