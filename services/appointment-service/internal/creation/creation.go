// Package creation is the boundary to the appointment creation service:
// the collaborator that owns slot availability and working-hours validation.
package creation

import (
	"context"
	"errors"
	"time"

	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
)

// Creation denials, surfaced to clients with their reason text.
var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrSelfBooking      = errors.New("cannot book an appointment with yourself")
	ErrPastDate         = errors.New("appointment date must be in the future")
	ErrSlotTaken        = errors.New("appointment slot is not available")
)

type Provider interface {
	Create(ctx context.Context, providerID, userID string, date time.Time) (model.Appointment, error)
}

// IsDenial reports whether err is a validation denial rather than an
// infrastructure failure.
func IsDenial(err error) bool {
	return errors.Is(err, ErrProviderNotFound) ||
		errors.Is(err, ErrSelfBooking) ||
		errors.Is(err, ErrPastDate) ||
		errors.Is(err, ErrSlotTaken)
}
