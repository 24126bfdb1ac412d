package storage

import (
	"context"
	"time"

	"github.com/andrelribeiro/agendo/libs/db"
	"github.com/jackc/pgx/v5"
)

type Notification struct {
	ID        int64
	UserID    string
	Content   string
	Read      bool
	CreatedAt time.Time
}

type NotificationRepository struct {
	pool *db.Pool
}

func NewNotificationRepository(pool *db.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// InsertNotification writes the notice inside the caller's transaction so the
// notice commits or rolls back together with the cancellation itself.
func (r *NotificationRepository) InsertNotification(ctx context.Context, tx pgx.Tx, userID, content string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notifications (user_id, content)
		VALUES ($1, $2)
	`, userID, content)
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, content, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return notifications, nil
}

// MarkRead flips one notification to read. Only the addressee may mark it;
// the returned bool is false when no matching row exists.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
