package middleware

import (
	"errors"
	"net/http"

	"github.com/gridpass/authcore/core/auth"
)

// BearerConfig configures the bearer middleware.
type BearerConfig struct {
	// Skip defines a function to skip middleware execution for specific requests.
	Skip func(r *http.Request) bool
}

// Bearer creates the bearer-channel guard with default configuration.
func Bearer(gateway *auth.Gateway) func(http.Handler) http.Handler {
	return BearerWithConfig(gateway, BearerConfig{})
}

// BearerWithConfig creates the bearer-channel guard. Unlike the session
// middleware there is no anonymous outcome: a missing, malformed, or invalid
// Authorization header terminates the request with a 401 whose body never
// states the reason. Only an infrastructure failure maps differently, to 503.
func BearerWithConfig(gateway *auth.Gateway, cfg BearerConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := gateway.VerifyBearer(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, auth.ErrStoreUnavailable) {
					http.Error(w, "service unavailable", http.StatusServiceUnavailable)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
