// Package policy holds the cancellation decision logic. Decide is pure: it
// performs no I/O, so the storage layer can hold a row lock across the
// read-decide-write sequence without the decision blocking on anything.
package policy

import (
	"errors"
	"time"

	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
)

// Denial reasons, in decision order. The reason text is part of the API
// contract: clients branch on it.
var (
	ErrNotOwner        = errors.New("not authorized to cancel this appointment")
	ErrAlreadyCanceled = errors.New("appointment already cancelled")
	ErrWindowClosed    = errors.New("cancellation requires at least 2 hours notice")
)

// Decide reports whether userID may cancel appt at instant now.
// It returns nil to allow, or one of the denial errors above.
//
// The checks run in a fixed order: ownership first, so a caller who does not
// own the appointment learns nothing about its cancellation state or timing;
// then cancellation state, which makes retried cancels idempotent; then the
// notice window against the original scheduled date. The caller must capture
// now once per attempt and reuse the same instant for the persisted
// canceled_at.
func Decide(appt model.Appointment, userID string, now time.Time) error {
	if appt.UserID != userID {
		return ErrNotOwner
	}
	if appt.CanceledAt != nil {
		return ErrAlreadyCanceled
	}
	if !model.Cancelable(appt.Date, now) {
		return ErrWindowClosed
	}
	return nil
}

// IsDenial reports whether err is a policy denial rather than an
// infrastructure failure.
func IsDenial(err error) bool {
	return errors.Is(err, ErrNotOwner) ||
		errors.Is(err, ErrAlreadyCanceled) ||
		errors.Is(err, ErrWindowClosed)
}
