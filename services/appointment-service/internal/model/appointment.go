package model

import "time"

// CancellationNotice is the minimum notice a user must give to cancel an
// appointment, counted back from the scheduled instant.
const CancellationNotice = 2 * time.Hour

type Appointment struct {
	ID         string
	UserID     string
	ProviderID string
	Date       time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time

	// Display fields resolved from the users table when the query asks for
	// them; they never round-trip back into writes.
	UserName          string
	ProviderName      string
	ProviderEmail     string
	ProviderAvatarURL string
}

// Past reports whether the scheduled instant is strictly before now.
// It is computed per read and never persisted.
func Past(date, now time.Time) bool {
	return date.Before(now)
}

// Cancelable reports whether the cancellation window is still open: the
// scheduled instant must be more than CancellationNotice away from now.
// This is purely the time-window predicate; ownership and cancellation state
// are checked by the policy package.
func Cancelable(date, now time.Time) bool {
	return now.Before(date.Add(-CancellationNotice))
}
