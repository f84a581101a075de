package refresh

import (
	"context"
	"errors"

	"github.com/gridpass/authcore/core/token"
)

// Registry enforces the one-live-refresh-token-per-user invariant over a
// Store. Stateless itself; safe for concurrent use.
type Registry struct {
	store Store
}

// NewRegistry creates a registry over the given store.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// Rotate supersedes any live refresh token for userID with a freshly
// generated jti and returns it. After Rotate returns, the previous jti is no
// longer live; under concurrent rotation for the same user the last writer
// wins and its jti is the only usable one.
func (r *Registry) Rotate(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrMissingUserID
	}

	jti, err := token.GenerateID()
	if err != nil {
		return "", errors.Join(ErrRotate, err)
	}

	if err := r.store.Replace(ctx, jti, userID); err != nil {
		return "", errors.Join(ErrRotate, err)
	}

	return jti, nil
}

// IsLive reports whether {jti, userID} is the user's current refresh-token
// record. Used during the refresh-to-access exchange.
func (r *Registry) IsLive(ctx context.Context, jti, userID string) (bool, error) {
	if jti == "" || userID == "" {
		return false, nil
	}
	return r.store.Exists(ctx, jti, userID)
}

// RevokeAll deletes the user's refresh-token record. Used on logout and
// security events; idempotent.
func (r *Registry) RevokeAll(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingUserID
	}
	if err := r.store.DeleteByUser(ctx, userID); err != nil {
		return errors.Join(ErrRevoke, err)
	}
	return nil
}
