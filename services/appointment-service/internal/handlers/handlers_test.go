package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrelribeiro/agendo/libs/auth"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/creation"
	"github.com/andrelribeiro/agendo/services/appointment-service/internal/policy"
)

func TestRequireUserWithJWT(t *testing.T) {
	secret := "test-secret"
	token, err := auth.SignHS256(auth.Claims{
		Sub: "user-1",
		Iat: time.Now().Unix(),
		Exp: time.Now().Add(time.Hour).Unix(),
	}, secret)
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}

	h := RequireUser(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserIDFromContext(r.Context()) != "user-1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
}

func TestRequireUserWithHeader(t *testing.T) {
	h := RequireUser("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserIDFromContext(r.Context()) != "user-2" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/appointments", nil)
	req.Header.Set("X-User-Id", "user-2")
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
}

func TestRequireUserRejectsAnonymous(t *testing.T) {
	h := RequireUser("secret")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/appointments", nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	if rw.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rw.Code)
	}
}

func TestRequireUserRejectsBadToken(t *testing.T) {
	h := RequireUser("secret")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	if rw.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rw.Code)
	}
}

func TestDenialStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{policy.ErrNotOwner, http.StatusForbidden},
		{policy.ErrAlreadyCanceled, http.StatusConflict},
		{policy.ErrWindowClosed, http.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		if got := denialStatus(c.err); got != c.want {
			t.Fatalf("denialStatus(%v): expected %d, got %d", c.err, c.want, got)
		}
	}
}

func TestCreationDenialStatus(t *testing.T) {
	if got := creationDenialStatus(creation.ErrSlotTaken); got != http.StatusConflict {
		t.Fatalf("expected 409 for taken slot, got %d", got)
	}
	if got := creationDenialStatus(creation.ErrPastDate); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for past date, got %d", got)
	}
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"0":   1,
		"-3":  1,
		"abc": 1,
		"2":   2,
		" 5 ": 5,
	}
	for raw, want := range cases {
		if got := parsePage(raw); got != want {
			t.Fatalf("parsePage(%q): expected %d, got %d", raw, want, got)
		}
	}
}

func TestNotificationID(t *testing.T) {
	if id, ok := notificationID("/api/v1/notifications/42/read"); !ok || id != 42 {
		t.Fatalf("expected id 42, got %d (ok=%v)", id, ok)
	}
	for _, path := range []string{
		"/api/v1/notifications/read",
		"/api/v1/notifications//read",
		"/api/v1/notifications/abc/read",
		"/api/v1/notifications/42",
		"/api/v1/notifications/42/read/extra",
	} {
		if _, ok := notificationID(path); ok {
			t.Fatalf("expected %q to be rejected", path)
		}
	}
}
