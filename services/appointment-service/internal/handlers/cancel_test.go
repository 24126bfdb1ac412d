package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/notify"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/outbox"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/policy"
	"github.com/jackc/pgx/v5"
)

// stubTx satisfies pgx.Tx for handler tests; only Commit and Rollback run.
type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *stubTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type stubStore struct {
	appt       model.Appointment
	getErr     error
	cancelOK   bool
	canceledAt time.Time
	tx         *stubTx
}

func (s *stubStore) Begin(context.Context) (pgx.Tx, error) {
	s.tx = &stubTx{}
	return s.tx, nil
}

func (s *stubStore) GetForUpdate(_ context.Context, _ pgx.Tx, id string) (model.Appointment, error) {
	if s.getErr != nil {
		return model.Appointment{}, s.getErr
	}
	return s.appt, nil
}

func (s *stubStore) Cancel(_ context.Context, _ pgx.Tx, _ string, at time.Time) (bool, error) {
	s.canceledAt = at
	return s.cancelOK, nil
}

func (s *stubStore) ListActiveByUser(context.Context, string, int) ([]model.Appointment, error) {
	return nil, nil
}

type recordingNoticeStore struct {
	userIDs []string
}

func (r *recordingNoticeStore) InsertNotification(_ context.Context, _ pgx.Tx, userID, _ string) error {
	r.userIDs = append(r.userIDs, userID)
	return nil
}

type recordingJobQueue struct {
	events []outbox.Event
}

func (r *recordingJobQueue) Insert(_ context.Context, _ pgx.Tx, evt outbox.Event) error {
	r.events = append(r.events, evt)
	return nil
}

func futureAppointment() model.Appointment {
	return model.Appointment{
		ID:            "appt-1",
		UserID:        "user-1",
		ProviderID:    "provider-1",
		Date:          time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour),
		UserName:      "Maria Souza",
		ProviderName:  "João Barbosa",
		ProviderEmail: "joao@example.com",
	}
}

func deleteAppointment(t *testing.T, h *AppointmentHandler, id, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "http://example.com/api/v1/appointments/"+id, nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKeyUserID, userID))
	rec := httptest.NewRecorder()
	h.Cancel(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body does not decode: %v", err)
	}
	return body["error"]
}

func TestCancelSuccess(t *testing.T) {
	store := &stubStore{appt: futureAppointment(), cancelOK: true}
	notices := &recordingNoticeStore{}
	jobs := &recordingJobQueue{}
	h := NewAppointmentHandler(store, notify.NewFanout(notices, jobs), nil, slog.Default())

	rec := deleteAppointment(t, h, "appt-1", "user-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, expected 200; body %s", rec.Code, rec.Body.String())
	}

	var resp appointmentResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response body does not decode: %v", err)
	}
	want := store.canceledAt.UTC().Format(time.RFC3339)
	if resp.CanceledAt != want {
		t.Fatalf("response canceled_at %q, expected the persisted instant %q", resp.CanceledAt, want)
	}

	if len(notices.userIDs) != 1 || notices.userIDs[0] != "provider-1" {
		t.Fatalf("expected exactly one notice for the provider, got %v", notices.userIDs)
	}
	if len(jobs.events) != 1 {
		t.Fatalf("expected exactly one mail job, got %d", len(jobs.events))
	}
	if !store.tx.committed {
		t.Fatal("transaction was not committed")
	}
}

func TestCancelLoserObservesAlreadyCancelled(t *testing.T) {
	// The guarded UPDATE affects zero rows when another transaction won the
	// race; the caller must see the same denial as for a cancelled row.
	store := &stubStore{appt: futureAppointment(), cancelOK: false}
	notices := &recordingNoticeStore{}
	jobs := &recordingJobQueue{}
	h := NewAppointmentHandler(store, notify.NewFanout(notices, jobs), nil, slog.Default())

	rec := deleteAppointment(t, h, "appt-1", "user-1")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, expected 409", rec.Code)
	}
	if got := errorBody(t, rec); got != policy.ErrAlreadyCanceled.Error() {
		t.Fatalf("error %q, expected %q", got, policy.ErrAlreadyCanceled.Error())
	}
	if len(notices.userIDs) != 0 || len(jobs.events) != 0 {
		t.Fatal("no fan-out may happen for the losing attempt")
	}
	if store.tx.committed {
		t.Fatal("losing attempt must not commit")
	}
}

func TestCancelNotFound(t *testing.T) {
	store := &stubStore{getErr: pgx.ErrNoRows}
	h := NewAppointmentHandler(store, notify.NewFanout(&recordingNoticeStore{}, &recordingJobQueue{}), nil, slog.Default())

	rec := deleteAppointment(t, h, "missing", "user-1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, expected 404", rec.Code)
	}
	if got := errorBody(t, rec); got != "appointment not found" {
		t.Fatalf("error %q", got)
	}
}

func TestCancelDenialMapping(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.Appointment)
		userID  string
		status  int
		errText string
	}{
		{
			name:    "not owner",
			mutate:  func(*model.Appointment) {},
			userID:  "someone-else",
			status:  http.StatusForbidden,
			errText: policy.ErrNotOwner.Error(),
		},
		{
			name: "already cancelled",
			mutate: func(a *model.Appointment) {
				at := time.Now().UTC().Add(-time.Hour)
				a.CanceledAt = &at
			},
			userID:  "user-1",
			status:  http.StatusConflict,
			errText: policy.ErrAlreadyCanceled.Error(),
		},
		{
			name: "window closed",
			mutate: func(a *model.Appointment) {
				a.Date = time.Now().UTC().Add(time.Hour)
			},
			userID:  "user-1",
			status:  http.StatusUnprocessableEntity,
			errText: policy.ErrWindowClosed.Error(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appt := futureAppointment()
			tc.mutate(&appt)
			store := &stubStore{appt: appt, cancelOK: true}
			notices := &recordingNoticeStore{}
			jobs := &recordingJobQueue{}
			h := NewAppointmentHandler(store, notify.NewFanout(notices, jobs), nil, slog.Default())

			rec := deleteAppointment(t, h, appt.ID, tc.userID)
			if rec.Code != tc.status {
				t.Fatalf("status %d, expected %d", rec.Code, tc.status)
			}
			if got := errorBody(t, rec); got != tc.errText {
				t.Fatalf("error %q, expected %q", got, tc.errText)
			}
			if len(notices.userIDs) != 0 || len(jobs.events) != 0 {
				t.Fatal("denied attempts must not fan out")
			}
		})
	}
}
