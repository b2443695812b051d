package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/auth"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

type contextKey string

const sessionKey contextKey = "session"

// AuthMiddleware guards a subrouter with the session store. Requests
// without a valid bearer token get a 401; the session record is placed on
// the request context for handlers that need the coordinator identity.
func AuthMiddleware(store *auth.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			session, ok := store.Validate(r.Context(), token)
			if !ok {
				log.Printf("[Auth] Rejected %s %s: no valid session", r.Method, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error": "Not authenticated", "code": 401}`))
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed by AuthMiddleware.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionKey).(models.Session)
	return s, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
