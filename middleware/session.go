package middleware

import (
	"errors"
	"net/http"

	"github.com/gridpass/authcore/core/auth"
	"github.com/gridpass/authcore/core/cookie"
)

// SessionConfig configures the session middleware.
type SessionConfig struct {
	// Skip defines a function to skip middleware execution for specific requests.
	Skip func(r *http.Request) bool
	// CookieName is the session cookie name (default: auth.DefaultCookieName).
	CookieName string
}

// Session creates the cookie-channel middleware with default configuration.
func Session(gateway *auth.Gateway, cookies *cookie.Manager) func(http.Handler) http.Handler {
	return SessionWithConfig(gateway, cookies, SessionConfig{})
}

// SessionWithConfig creates the cookie-channel middleware. It resolves the
// session cookie on every request and stores the (user, session) result in
// the context, where anonymous is a valid outcome. On a live session the
// cookie is re-set so the browser expiry tracks any sliding renewal; a
// cookie whose session is gone is cleared.
func SessionWithConfig(gateway *auth.Gateway, cookies *cookie.Manager, cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = auth.DefaultCookieName
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			rawToken, err := cookies.Get(r, cfg.CookieName)
			if err != nil && !errors.Is(err, cookie.ErrCookieNotFound) {
				rawToken = ""
			}

			usr, sess, err := gateway.Authenticate(r.Context(), rawToken)
			if err != nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			if sess != nil {
				cookies.Set(w, cfg.CookieName, rawToken, cookie.WithExpires(sess.ExpiresAt))
			} else if rawToken != "" {
				cookies.Delete(w, cfg.CookieName)
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), usr, sess)))
		})
	}
}
