package creation

import (
	"context"
	"time"

	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/storage"
)

// localProvider validates and creates appointments against the local store.
// It is the default when no external creation service is configured.
type localProvider struct {
	repo *storage.AppointmentRepository
}

func NewLocalProvider(repo *storage.AppointmentRepository) Provider {
	return &localProvider{repo: repo}
}

func (p *localProvider) Create(ctx context.Context, providerID, userID string, date time.Time) (model.Appointment, error) {
	// Appointments start on the hour.
	slot := date.UTC().Truncate(time.Hour)
	if !slot.After(time.Now().UTC()) {
		return model.Appointment{}, ErrPastDate
	}
	if providerID == userID {
		return model.Appointment{}, ErrSelfBooking
	}

	exists, err := p.repo.ProviderExists(ctx, providerID)
	if err != nil {
		return model.Appointment{}, err
	}
	if !exists {
		return model.Appointment{}, ErrProviderNotFound
	}

	taken, err := p.repo.SlotTaken(ctx, providerID, slot)
	if err != nil {
		return model.Appointment{}, err
	}
	if taken {
		return model.Appointment{}, ErrSlotTaken
	}

	appt := model.Appointment{
		UserID:     userID,
		ProviderID: providerID,
		Date:       slot,
	}
	id, err := p.repo.Create(ctx, &appt)
	if err != nil {
		return model.Appointment{}, err
	}
	appt.ID = id
	return appt, nil
}
