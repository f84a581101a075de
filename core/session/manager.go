package session

import (
	"context"
	"errors"
	"time"

	"github.com/gridpass/authcore/core/token"
	"github.com/gridpass/authcore/core/user"
)

// Manager handles the session lifecycle: creation, validation with sliding
// renewal, and invalidation. It never sees raw tokens at rest; every store
// access goes through the token digest.
type Manager struct {
	store Store
	cfg   *Config
}

// NewManager creates a session manager over the given store. Defaults to a
// 30-day TTL with a 15-day renewal window.
func NewManager(store Store, opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Manager{store: store, cfg: cfg}
}

// Create computes the token digest and persists a new session for userID
// expiring a full TTL from now. The metadata is captured once and never
// mutated afterwards.
func (m *Manager) Create(ctx context.Context, rawToken, userID string, meta Metadata) (Session, error) {
	if rawToken == "" {
		return Session{}, ErrMissingToken
	}
	if userID == "" {
		return Session{}, ErrMissingUserID
	}

	sess := Session{
		ID:        token.Digest(rawToken),
		UserID:    userID,
		ExpiresAt: m.cfg.now().Add(m.cfg.TTL),
		Metadata:  meta,
	}

	if err := m.store.Insert(ctx, &sess); err != nil {
		return Session{}, errors.Join(ErrSaveSession, err)
	}

	return sess, nil
}

// Validate resolves a raw token to its session and owning user.
//
// An unknown digest yields (nil, nil, nil): "no session" is a valid outcome,
// not an error. An expired session is deleted and likewise yields
// (nil, nil, nil). A session inside the renewal window has its expiration
// slid forward to now+TTL before being returned. Any non-nil error is an
// infrastructure failure, never a credential rejection.
func (m *Manager) Validate(ctx context.Context, rawToken string) (*Session, *user.User, error) {
	id := token.Digest(rawToken)

	sess, usr, err := m.store.GetJoinUser(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	now := m.cfg.now()

	if sess.IsExpired(now) {
		if err := m.store.Delete(ctx, id); err != nil {
			return nil, nil, errors.Join(ErrDeleteSession, err)
		}
		return nil, nil, nil
	}

	if sess.InRenewalWindow(now, m.cfg.RenewWindow) {
		newExpiry := now.Add(m.cfg.TTL)
		if err := m.store.UpdateExpiry(ctx, id, newExpiry); err != nil {
			// Session invalidated between the read and the renewal.
			if errors.Is(err, ErrNotFound) {
				return nil, nil, nil
			}
			return nil, nil, errors.Join(ErrRenewSession, err)
		}
		sess.ExpiresAt = newExpiry
	}

	return sess, usr, nil
}

// Invalidate deletes the session with the given ID. Idempotent: deleting a
// non-existent session is not an error.
func (m *Manager) Invalidate(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// TTL returns the validity granted to new and renewed sessions.
func (m *Manager) TTL() time.Duration {
	return m.cfg.TTL
}
