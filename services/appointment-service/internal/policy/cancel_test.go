package policy

import (
	"errors"
	"testing"
	"time"

	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
)

func activeAppointment(date time.Time) model.Appointment {
	return model.Appointment{
		ID:         "appt-1",
		UserID:     "user-1",
		ProviderID: "provider-1",
		Date:       date,
	}
}

func TestDecideAllows(t *testing.T) {
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 10, 11, 59, 0, 0, time.UTC)

	if err := Decide(activeAppointment(date), "user-1", now); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestDecideOwnership(t *testing.T) {
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	err := Decide(activeAppointment(date), "someone-else", now)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestDecideOwnershipBeatsTiming(t *testing.T) {
	// A non-owner must get the ownership denial even when the window is also
	// closed, so the caller learns nothing about the window state.
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	now := date.Add(time.Hour)

	err := Decide(activeAppointment(date), "someone-else", now)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestDecideAlreadyCanceled(t *testing.T) {
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	canceledAt := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	appt := activeAppointment(date)
	appt.CanceledAt = &canceledAt

	err := Decide(appt, "user-1", now)
	if !errors.Is(err, ErrAlreadyCanceled) {
		t.Fatalf("expected ErrAlreadyCanceled, got %v", err)
	}
}

func TestDecideWindowBoundary(t *testing.T) {
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	deadline := date.Add(-2 * time.Hour)

	if err := Decide(activeAppointment(date), "user-1", deadline.Add(-time.Second)); err != nil {
		t.Fatalf("expected allow one second before the deadline, got %v", err)
	}
	if err := Decide(activeAppointment(date), "user-1", deadline); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("expected ErrWindowClosed at exactly the deadline, got %v", err)
	}
	if err := Decide(activeAppointment(date), "user-1", date.Add(time.Hour)); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("expected ErrWindowClosed for a past appointment, got %v", err)
	}
}

func TestIsDenial(t *testing.T) {
	for _, err := range []error{ErrNotOwner, ErrAlreadyCanceled, ErrWindowClosed} {
		if !IsDenial(err) {
			t.Fatalf("expected %v to be a denial", err)
		}
	}
	if IsDenial(errors.New("connection refused")) {
		t.Fatal("infrastructure errors are not denials")
	}
}
