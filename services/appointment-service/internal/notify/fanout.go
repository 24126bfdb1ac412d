// Package notify performs the side effects of a successful cancellation:
// a persisted notice for the provider and a queued cancellation mail job.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andrelribeiro/agendo/libs/ptbr"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/outbox"
	"github.com/jackc/pgx/v5"
)

// CancellationMailJobKey is the job-type identifier carried by the queued
// cancellation mail job; it doubles as the Kafka topic the mailer consumes.
const CancellationMailJobKey = "appointment.cancellation_mail.v1"

// NoticeText builds the provider-facing notice for a cancelled appointment.
func NoticeText(userName string, date time.Time) string {
	return fmt.Sprintf("%s, cancelou o agendamento do %s", userName, ptbr.FormatLong(date))
}

// MailJob is the snapshot handed to the mail worker. It carries everything
// the worker needs so the mail renders from state as it was at cancellation
// time, with no re-query of rows that may have changed since.
type MailJob struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"`
	DateText      string `json:"date_text"`
	CanceledAt    string `json:"canceled_at"`
	UserName      string `json:"user_name"`
	ProviderID    string `json:"provider_id"`
	ProviderName  string `json:"provider_name"`
	ProviderEmail string `json:"provider_email"`
}

// NewMailJob snapshots appt into a mail job payload. The appointment must be
// fully loaded (display fields resolved) and already stamped with CanceledAt.
func NewMailJob(appt model.Appointment) MailJob {
	job := MailJob{
		AppointmentID: appt.ID,
		Date:          appt.Date.UTC().Format(time.RFC3339),
		DateText:      ptbr.FormatLong(appt.Date),
		UserName:      appt.UserName,
		ProviderID:    appt.ProviderID,
		ProviderName:  appt.ProviderName,
		ProviderEmail: appt.ProviderEmail,
	}
	if appt.CanceledAt != nil {
		job.CanceledAt = appt.CanceledAt.UTC().Format(time.RFC3339)
	}
	return job
}

// NoticeStore persists provider notices. Implemented by storage.NotificationRepository.
type NoticeStore interface {
	InsertNotification(ctx context.Context, tx pgx.Tx, userID, content string) error
}

// JobQueue enqueues asynchronous jobs. Implemented by outbox.Repository.
type JobQueue interface {
	Insert(ctx context.Context, tx pgx.Tx, evt outbox.Event) error
}

type Fanout struct {
	notices NoticeStore
	jobs    JobQueue
}

func NewFanout(notices NoticeStore, jobs JobQueue) *Fanout {
	return &Fanout{notices: notices, jobs: jobs}
}

// Run performs the fan-out for one cancelled appointment: first the persisted
// notice addressed to the provider, then the queued mail job. Both writes
// share the caller's transaction, so a failure in either rolls back the
// cancellation itself and no partial fan-out can be observed.
func (f *Fanout) Run(ctx context.Context, tx pgx.Tx, appt model.Appointment) error {
	if err := f.notices.InsertNotification(ctx, tx, appt.ProviderID, NoticeText(appt.UserName, appt.Date)); err != nil {
		return fmt.Errorf("insert cancellation notice: %w", err)
	}

	payload, err := json.Marshal(NewMailJob(appt))
	if err != nil {
		return fmt.Errorf("build cancellation mail payload: %w", err)
	}
	if err := f.jobs.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     CancellationMailJobKey,
		Payload:       payload,
	}); err != nil {
		return fmt.Errorf("enqueue cancellation mail: %w", err)
	}
	return nil
}
