package session

import (
	"context"
	"time"

	"github.com/gridpass/authcore/core/user"
)

// Store defines the persistence interface for session records.
// Implementations must handle concurrent access safely.
type Store interface {
	// Insert persists a new session record.
	Insert(ctx context.Context, sess *Session) error
	// GetJoinUser returns the session with the given ID together with its
	// owning user, or ErrNotFound when no such session exists.
	GetJoinUser(ctx context.Context, id string) (*Session, *user.User, error)
	// UpdateExpiry extends a session's expiration. Implementations must
	// never shorten an expiry written by a racing extension: the stored
	// value is the maximum of the current and the new expiry.
	UpdateExpiry(ctx context.Context, id string, newExpiry time.Time) error
	// Delete removes a session record. Deleting a non-existent ID is not
	// an error.
	Delete(ctx context.Context, id string) error
}
