package session

import "time"

// Config holds session manager policy.
type Config struct {
	// TTL is the validity granted to new and renewed sessions.
	TTL time.Duration
	// RenewWindow is the trailing slice of the validity window inside
	// which a validation slides the expiration forward.
	RenewWindow time.Duration

	now func() time.Time
}

// defaultConfig returns the production policy: 30-day sessions renewed
// within the last 15 days of validity.
func defaultConfig() *Config {
	return &Config{
		TTL:         30 * 24 * time.Hour,
		RenewWindow: 15 * 24 * time.Hour,
		now:         time.Now,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithTTL sets the session time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.TTL = ttl
	}
}

// WithRenewWindow sets the trailing renewal window.
func WithRenewWindow(window time.Duration) Option {
	return func(c *Config) {
		c.RenewWindow = window
	}
}

// WithNow overrides the manager's clock. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.now = now
		}
	}
}
