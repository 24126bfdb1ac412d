package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/andrelribeiro/agendo/libs/auth"
	"github.com/andrelribeiro/agendo/libs/httpx"
)

type ctxKey int

const ctxKeyUserID ctxKey = iota

// UserIDFromContext returns the authenticated user id set by RequireUser.
func UserIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyUserID).(string)
	return v
}

// RequireUser resolves the caller identity: a Bearer HS256 token (sub claim)
// when present, otherwise the X-User-Id header set by a trusted gateway.
// Requests with neither are rejected; session issuance lives elsewhere.
func RequireUser(jwtSecret string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := ""
			if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
				token, ok := strings.CutPrefix(header, "Bearer ")
				if !ok {
					httpx.WriteError(w, http.StatusUnauthorized, "invalid authorization header")
					return
				}
				claims, err := auth.ParseAndVerifyHS256(strings.TrimSpace(token), jwtSecret)
				if err != nil {
					httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
					return
				}
				userID = claims.Sub
			} else {
				userID = strings.TrimSpace(r.Header.Get("X-User-Id"))
			}

			if userID == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
