package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gridpass/authcore/core/refresh"
	"github.com/gridpass/authcore/core/session"
	"github.com/gridpass/authcore/core/user"
)

// Store holds all auth data in mutex-guarded maps. The typed store views
// returned by Users, Sessions, and RefreshTokens implement the respective
// storage interfaces over the shared data, so the session-user join always
// reads a consistent snapshot.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*user.User       // keyed by user ID
	usernames   map[string]string           // username -> user ID
	sessions    map[string]*session.Session // keyed by session ID (token digest)
	refreshJTIs map[string]string           // user ID -> live jti
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:       make(map[string]*user.User),
		usernames:   make(map[string]string),
		sessions:    make(map[string]*session.Session),
		refreshJTIs: make(map[string]string),
	}
}

// Users returns the user-store view.
func (s *Store) Users() user.Store { return userStore{s} }

// Sessions returns the session-store view.
func (s *Store) Sessions() session.Store { return sessionStore{s} }

// RefreshTokens returns the refresh-token-store view.
func (s *Store) RefreshTokens() refresh.Store { return refreshStore{s} }

func (s *Store) getUserLocked(id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type userStore struct{ *Store }

func (s userStore) GetByID(_ context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getUserLocked(id)
}

func (s userStore) GetByUsername(_ context.Context, username string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	return s.getUserLocked(id)
}

func (s userStore) Insert(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[u.Username]; taken {
		return user.ErrUsernameTaken
	}

	cp := *u
	if cp.JoinedAt.IsZero() {
		cp.JoinedAt = time.Now()
	}
	s.users[cp.ID] = &cp
	s.usernames[cp.Username] = cp.ID
	return nil
}

func (s userStore) UpdateProfile(_ context.Context, id string, p user.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Avatar = p.Avatar
	u.Flag = p.Flag
	return nil
}

type sessionStore struct{ *Store }

func (s sessionStore) Insert(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *sess
	s.sessions[cp.ID] = &cp
	return nil
}

func (s sessionStore) GetJoinUser(_ context.Context, id string) (*session.Session, *user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil, session.ErrNotFound
	}
	usr, err := s.getUserLocked(sess.UserID)
	if err != nil {
		return nil, nil, session.ErrNotFound
	}

	sessCp := *sess
	return &sessCp, usr, nil
}

// UpdateExpiry only moves the stored expiry forward; a racing extension can
// never shorten it.
func (s sessionStore) UpdateExpiry(_ context.Context, id string, newExpiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return session.ErrNotFound
	}
	if newExpiry.After(sess.ExpiresAt) {
		sess.ExpiresAt = newExpiry
	}
	return nil
}

func (s sessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type refreshStore struct{ *Store }

func (s refreshStore) Replace(_ context.Context, jti, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshJTIs[userID] = jti
	return nil
}

func (s refreshStore) Exists(_ context.Context, jti, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshJTIs[userID] == jti, nil
}

func (s refreshStore) DeleteByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.refreshJTIs, userID)
	return nil
}
