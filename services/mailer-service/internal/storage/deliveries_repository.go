package storage

import (
	"context"

	"github.com/andrelribeiro/agendo/libs/db"
)

type Delivery struct {
	AppointmentID string
	Recipient     string
	Subject       string
	Status        string
	FailureReason string
}

// Repository records the outcome of every mail job attempt.
type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, d Delivery) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO mail_deliveries (appointment_id, recipient, subject, status, failure_reason)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`, d.AppointmentID, d.Recipient, d.Subject, d.Status, d.FailureReason)
	return err
}
