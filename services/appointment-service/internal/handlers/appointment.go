package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andrelribeiro/agendo/libs/httpx"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/creation"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/model"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/notify"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/policy"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/storage"
	"github.com/jackc/pgx/v5"
)

// AppointmentStore is the slice of the appointment repository the handlers
// drive. Implemented by storage.AppointmentRepository.
type AppointmentStore interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (model.Appointment, error)
	Cancel(ctx context.Context, tx pgx.Tx, id string, at time.Time) (bool, error)
	ListActiveByUser(ctx context.Context, userID string, page int) ([]model.Appointment, error)
}

type AppointmentHandler struct {
	store    AppointmentStore
	fanout   *notify.Fanout
	creation creation.Provider
	logger   *slog.Logger
}

func NewAppointmentHandler(store AppointmentStore, fanout *notify.Fanout, creationProvider creation.Provider, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		store:    store,
		fanout:   fanout,
		creation: creationProvider,
		logger:   logger,
	}
}

type providerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type appointmentItem struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Past       bool            `json:"past"`
	Cancelable bool            `json:"cancelable"`
	Provider   providerSummary `json:"provider"`
}

type appointmentResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	ProviderID string `json:"provider_id"`
	Date       string `json:"date"`
	CanceledAt string `json:"canceled_at,omitempty"`
}

type createAppointmentRequest struct {
	ProviderID string `json:"provider_id"`
	Date       string `json:"date"`
}

// Appointments dispatches /api/v1/appointments: GET lists, POST creates.
func (h *AppointmentHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *AppointmentHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	page := parsePage(r.URL.Query().Get("page"))

	appts, err := h.store.ListActiveByUser(r.Context(), userID, page)
	if err != nil {
		h.logger.Error("failed to list appointments", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list appointments")
		return
	}

	now := time.Now().UTC()
	items := make([]appointmentItem, 0, len(appts))
	for _, appt := range appts {
		items = append(items, appointmentItem{
			ID:         appt.ID,
			Date:       appt.Date.UTC().Format(time.RFC3339),
			Past:       model.Past(appt.Date, now),
			Cancelable: model.Cancelable(appt.Date, now),
			Provider: providerSummary{
				ID:        appt.ProviderID,
				Name:      appt.ProviderName,
				AvatarURL: appt.ProviderAvatarURL,
			},
		})
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *AppointmentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.ProviderID = strings.TrimSpace(req.ProviderID)
	if req.ProviderID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "provider_id required")
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid date")
		return
	}

	userID := UserIDFromContext(r.Context())
	appt, err := h.creation.Create(r.Context(), req.ProviderID, userID, date)
	if err != nil {
		if creation.IsDenial(err) {
			httpx.WriteError(w, creationDenialStatus(err), err.Error())
			return
		}
		h.logger.Error("failed to create appointment", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create appointment")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toResponse(appt))
}

// Cancel handles DELETE /api/v1/appointments/{id}: evaluate the cancellation
// policy under a row lock, stamp the cancellation, and fan out the notice and
// mail job in the same transaction.
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/appointments/")
	if id == "" || strings.Contains(id, "/") {
		httpx.WriteError(w, http.StatusNotFound, "appointment not found")
		return
	}

	userID := UserIDFromContext(r.Context())
	// One instant per attempt: the decision and the persisted canceled_at
	// must agree.
	now := time.Now().UTC()

	ctx := r.Context()
	tx, err := h.store.Begin(ctx)
	if err != nil {
		h.logger.Error("failed to begin transaction", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.store.GetForUpdate(ctx, tx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.WriteError(w, http.StatusNotFound, "appointment not found")
			return
		}
		h.logger.Error("failed to load appointment", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load appointment")
		return
	}

	if err := policy.Decide(appt, userID, now); err != nil {
		httpx.WriteError(w, denialStatus(err), err.Error())
		return
	}

	ok, err := h.store.Cancel(ctx, tx, appt.ID, now)
	if err != nil {
		h.logger.Error("failed to cancel appointment", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to cancel appointment")
		return
	}
	if !ok {
		// Unreachable while the row lock is held; kept as a guard.
		httpx.WriteError(w, denialStatus(policy.ErrAlreadyCanceled), policy.ErrAlreadyCanceled.Error())
		return
	}
	appt.CanceledAt = &now

	if err := h.fanout.Run(ctx, tx, appt); err != nil {
		h.logger.Error("cancellation fan-out failed", "err", err, "appointment_id", appt.ID)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to cancel appointment")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		h.logger.Error("failed to commit cancellation", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to cancel appointment")
		return
	}

	h.logger.Info("appointment cancelled",
		"appointment_id", appt.ID,
		"user_id", userID,
		"provider_id", appt.ProviderID,
	)
	httpx.WriteJSON(w, http.StatusOK, toResponse(appt))
}

func toResponse(appt model.Appointment) appointmentResponse {
	resp := appointmentResponse{
		ID:         appt.ID,
		UserID:     appt.UserID,
		ProviderID: appt.ProviderID,
		Date:       appt.Date.UTC().Format(time.RFC3339),
	}
	if appt.CanceledAt != nil {
		resp.CanceledAt = appt.CanceledAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func denialStatus(err error) int {
	switch {
	case errors.Is(err, policy.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, policy.ErrAlreadyCanceled):
		return http.StatusConflict
	case errors.Is(err, policy.ErrWindowClosed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func creationDenialStatus(err error) int {
	if errors.Is(err, creation.ErrSlotTaken) {
		return http.StatusConflict
	}
	return http.StatusUnprocessableEntity
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
