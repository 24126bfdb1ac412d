package storage

import (
	"context"
	"errors"
	"time"

	"github.com/andrelribeiro/agendo/libs/db"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const pageSize = 20

type AppointmentRepository struct {
	pool *db.Pool
}

func NewAppointmentRepository(pool *db.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// GetForUpdate loads one appointment with the owner and provider display
// fields resolved, holding a row lock on the appointment until the enclosing
// transaction ends. Concurrent cancels of the same appointment serialize here.
func (r *AppointmentRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (model.Appointment, error) {
	var appt model.Appointment
	var canceledAt *time.Time
	err := tx.QueryRow(ctx, `
		SELECT a.id, a.user_id, a.provider_id, a.date, a.canceled_at, a.created_at,
			u.name, p.name, p.email, COALESCE(p.avatar_url, '')
		FROM appointments a
		JOIN users u ON u.id = a.user_id
		JOIN users p ON p.id = a.provider_id
		WHERE a.id = $1
		FOR UPDATE OF a
	`, id).Scan(
		&appt.ID,
		&appt.UserID,
		&appt.ProviderID,
		&appt.Date,
		&canceledAt,
		&appt.CreatedAt,
		&appt.UserName,
		&appt.ProviderName,
		&appt.ProviderEmail,
		&appt.ProviderAvatarURL,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	appt.CanceledAt = canceledAt
	return appt, nil
}

// Cancel stamps canceled_at with the decision instant. The canceled_at IS NULL
// guard makes the write a compare-and-set: the returned bool is false when
// another transaction already cancelled the row.
func (r *AppointmentRepository) Cancel(ctx context.Context, tx pgx.Tx, id string, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET canceled_at = $2
		WHERE id = $1 AND canceled_at IS NULL
	`, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *model.Appointment) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, user_id, provider_id, date)
		VALUES ($1, $2, $3, $4)
	`, id, appt.UserID, appt.ProviderID, appt.Date)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListActiveByUser returns the page-th page (1-based, 20 per page) of the
// owner's not-yet-cancelled appointments, soonest first, with the provider
// summary resolved for display.
func (r *AppointmentRepository) ListActiveByUser(ctx context.Context, userID string, page int) ([]model.Appointment, error) {
	if page < 1 {
		page = 1
	}
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.user_id, a.provider_id, a.date, a.created_at,
			p.name, COALESCE(p.avatar_url, '')
		FROM appointments a
		JOIN users p ON p.id = a.provider_id
		WHERE a.user_id = $1 AND a.canceled_at IS NULL
		ORDER BY a.date ASC
		LIMIT $2 OFFSET $3
	`, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		var appt model.Appointment
		if err := rows.Scan(
			&appt.ID,
			&appt.UserID,
			&appt.ProviderID,
			&appt.Date,
			&appt.CreatedAt,
			&appt.ProviderName,
			&appt.ProviderAvatarURL,
		); err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return appts, nil
}

// ProviderExists reports whether id names a user flagged as a provider.
func (r *AppointmentRepository) ProviderExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND provider)
	`, id).Scan(&exists)
	return exists, err
}

// SlotTaken reports whether the provider already has an active appointment at
// exactly date.
func (r *AppointmentRepository) SlotTaken(ctx context.Context, providerID string, date time.Time) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE provider_id = $1 AND date = $2 AND canceled_at IS NULL
		)
	`, providerID, date).Scan(&taken)
	return taken, err
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
