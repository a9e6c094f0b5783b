package web

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/example/roomportal/internal/logging"
	"github.com/example/roomportal/internal/session"
)

// Cookie names. The token cookie carries the bearer token of the remote
// booking service; the visitor cookie keys display preferences and exists
// for anonymous visitors too.
const (
	tokenCookieName   = "portal_token"
	visitorCookieName = "portal_visitor"
)

// RequestLogger attaches a request-scoped logger to the context and records
// start and completion of every request.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	var counter atomic.Uint64

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := counter.Add(1)
			logger := base.With(
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
			)

			ctx := logging.ContextWithLogger(r.Context(), logger)
			start := time.Now()
			logger.InfoContext(ctx, "request started")
			next.ServeHTTP(w, r.WithContext(ctx))
			logger.InfoContext(ctx, "request completed", "duration", time.Since(start))
		})
	}
}

// WithVisitor ensures every request carries a visitor identifier, minting a
// cookie on first contact.
func WithVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := ""
		if cookie, err := r.Cookie(visitorCookieName); err == nil {
			visitorID = cookie.Value
		}
		if visitorID == "" {
			visitorID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookieName,
				Value:    visitorID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			})
		}
		next.ServeHTTP(w, r.WithContext(ContextWithVisitor(r.Context(), visitorID)))
	})
}

// WithSession decodes the token cookie when present. Undecodable tokens are
// dropped so the visitor continues anonymously instead of looping on errors.
func WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(tokenCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := session.Decode(cookie.Value)
		if err != nil {
			logging.Or(r.Context(), nil).WarnContext(r.Context(), "dropping undecodable session token", "error", err)
			clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), claims, cookie.Value)))
	})
}

// RequireUser redirects anonymous visitors to the login page.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin redirects anonymous visitors to the login page and signed-in
// non-administrators to their dashboard.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if !claims.Role.IsAdmin() {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
