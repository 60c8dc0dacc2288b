package middleware

import (
	"net/http"
	"strings"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/session"
)

// WithSession resolves the bearer token against the session store and, when
// it matches, attaches the session to the request context. Anonymous and
// unknown-token requests pass through without a session; the route guards
// decide what that means.
func WithSession(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := sessions.Get(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := domain.NewContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401 and a /login redirect hint.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.SessionFromContext(r.Context()) == nil {
			err := domain.Unauthorized("", "Sign in to continue")
			respondError(w, r, err, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects non-administrators with 403. This gate is a routing
// convenience only; the backend independently authorizes every admin call.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := domain.SessionFromContext(r.Context())
		if sess == nil {
			err := domain.Unauthorized("", "Sign in to continue")
			respondError(w, r, err, "/login")
			return
		}
		if !sess.IsAdmin() {
			err := domain.Forbidden("", "Administrator access required")
			respondError(w, r, err, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
