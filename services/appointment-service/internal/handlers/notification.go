package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andrelribeiro/agendo/libs/httpx"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/storage"
)

type NotificationHandler struct {
	repo   *storage.NotificationRepository
	logger *slog.Logger
}

func NewNotificationHandler(repo *storage.NotificationRepository, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{repo: repo, logger: logger}
}

type notificationItem struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// List handles GET /api/v1/notifications: the most recent notices addressed
// to the caller (providers read their cancellation notices here).
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID := UserIDFromContext(r.Context())
	notifications, err := h.repo.ListByUser(r.Context(), userID, 20)
	if err != nil {
		h.logger.Error("failed to list notifications", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}

	items := make([]notificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationItem{
			ID:        n.ID,
			Content:   n.Content,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// MarkRead handles PATCH /api/v1/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, ok := notificationID(r.URL.Path)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "notification not found")
		return
	}

	userID := UserIDFromContext(r.Context())
	updated, err := h.repo.MarkRead(r.Context(), id, userID)
	if err != nil {
		h.logger.Error("failed to mark notification read", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	if !updated {
		httpx.WriteError(w, http.StatusNotFound, "notification not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func notificationID(path string) (int64, bool) {
	rest, ok := strings.CutPrefix(path, "/api/v1/notifications/")
	if !ok {
		return 0, false
	}
	raw, ok := strings.CutSuffix(rest, "/read")
	if !ok || raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
