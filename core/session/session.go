package session

import (
	"time"
)

// Metadata is request provenance captured when a session is created.
// Immutable for the session's lifetime.
type Metadata struct {
	IP         string
	Country    string
	City       string
	Region     string
	DeviceType string
	UserAgent  string
}

// Session is the persisted session record. ID is the SHA-256 digest of the
// raw client token; the raw token itself is never stored.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	Metadata  Metadata
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// InRenewalWindow reports whether the session's remaining validity at now
// has dropped inside the trailing renewal window.
func (s Session) InRenewalWindow(now time.Time, window time.Duration) bool {
	return !now.Before(s.ExpiresAt.Add(-window))
}
