package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/outbox"
	"github.com/jackc/pgx/v5"
)

type fakeNoticeStore struct {
	userIDs  []string
	contents []string
	err      error
}

func (s *fakeNoticeStore) InsertNotification(_ context.Context, _ pgx.Tx, userID, content string) error {
	if s.err != nil {
		return s.err
	}
	s.userIDs = append(s.userIDs, userID)
	s.contents = append(s.contents, content)
	return nil
}

type fakeJobQueue struct {
	events []outbox.Event
}

func (q *fakeJobQueue) Insert(_ context.Context, _ pgx.Tx, evt outbox.Event) error {
	q.events = append(q.events, evt)
	return nil
}

func canceledAppointment() model.Appointment {
	date := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	canceledAt := time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)
	return model.Appointment{
		ID:            "appt-1",
		UserID:        "user-1",
		ProviderID:    "provider-1",
		Date:          date,
		CanceledAt:    &canceledAt,
		UserName:      "Maria Souza",
		ProviderName:  "João Barbosa",
		ProviderEmail: "joao@example.com",
	}
}

func TestFanoutRun(t *testing.T) {
	notices := &fakeNoticeStore{}
	jobs := &fakeJobQueue{}
	appt := canceledAppointment()

	if err := NewFanout(notices, jobs).Run(context.Background(), nil, appt); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(notices.userIDs) != 1 {
		t.Fatalf("expected exactly one notice, got %d", len(notices.userIDs))
	}
	if notices.userIDs[0] != appt.ProviderID {
		t.Fatalf("notice addressed to %q, expected provider %q", notices.userIDs[0], appt.ProviderID)
	}
	want := "Maria Souza, cancelou o agendamento do dia 10 de janeiro, para às 14h"
	if notices.contents[0] != want {
		t.Fatalf("notice content %q, expected %q", notices.contents[0], want)
	}

	if len(jobs.events) != 1 {
		t.Fatalf("expected exactly one job, got %d", len(jobs.events))
	}
	evt := jobs.events[0]
	if evt.EventType != CancellationMailJobKey {
		t.Fatalf("job key %q, expected %q", evt.EventType, CancellationMailJobKey)
	}
	if evt.AggregateID != appt.ID {
		t.Fatalf("job aggregate id %q, expected %q", evt.AggregateID, appt.ID)
	}

	var job MailJob
	if err := json.Unmarshal(evt.Payload, &job); err != nil {
		t.Fatalf("payload does not unmarshal: %v", err)
	}
	if job.ProviderEmail != appt.ProviderEmail {
		t.Fatalf("job provider email %q, expected %q", job.ProviderEmail, appt.ProviderEmail)
	}
	if job.UserName != appt.UserName {
		t.Fatalf("job user name %q, expected %q", job.UserName, appt.UserName)
	}
	if job.CanceledAt != "2024-01-10T11:00:00Z" {
		t.Fatalf("job canceled_at %q, expected snapshot of the decision instant", job.CanceledAt)
	}
	if job.DateText != "dia 10 de janeiro, para às 14h" {
		t.Fatalf("job date text %q", job.DateText)
	}
}

func TestFanoutNoticeFailureStopsJob(t *testing.T) {
	notices := &fakeNoticeStore{err: errors.New("insert failed")}
	jobs := &fakeJobQueue{}

	err := NewFanout(notices, jobs).Run(context.Background(), nil, canceledAppointment())
	if err == nil {
		t.Fatal("expected error when the notice insert fails")
	}
	if len(jobs.events) != 0 {
		t.Fatalf("expected no job after notice failure, got %d", len(jobs.events))
	}
}
