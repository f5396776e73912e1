package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/agromarket-cm/agromarket/internal/cookie"
	"github.com/agromarket-cm/agromarket/internal/session"
)

const (
	// SessionCookieName is the cookie that carries the visitor's session ID.
	SessionCookieName = "agro_session"

	// SessionContextKey is the context key for the resolved session.
	SessionContextKey contextKey = "session"
)

// WithSession resolves the visitor's session from the agro_session cookie,
// creating one when the cookie is absent or stale, and stores it in the
// request context. The cookie is refreshed on every request so active
// visitors never expire mid-visit.
func WithSession(store *session.Store, cookies *cookie.Config, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.GetOrCreate(cookie.Get(r, SessionCookieName))
			cookies.SetSession(w, SessionCookieName, sess.ID, ttl)

			ctx := context.WithValue(r.Context(), SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the session from the context. Returns nil when the
// session middleware has not run, which is a wiring bug in the route table.
func GetSession(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(SessionContextKey).(*session.Session); ok {
		return sess
	}
	return nil
}
