package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/gridpass/authcore/core/session"
	"github.com/gridpass/authcore/core/user"
)

// memUserStore is a mutex-guarded in-memory user.Store for tests.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]*user.User

	insertErr error
	getErr    error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*user.User)}
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *memUserStore) Insert(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id string, p user.Profile) error {
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

// memSessionStore is a mutex-guarded in-memory session.Store joined against a
// memUserStore.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
	users    *memUserStore

	getErr    error
	deleteErr error
}

func newMemSessionStore(users *memUserStore) *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*session.Session), users: users}
}

func (s *memSessionStore) Insert(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *memSessionStore) GetJoinUser(ctx context.Context, id string) (*session.Session, *user.User, error) {
	s.mu.Lock()
	if s.getErr != nil {
		s.mu.Unlock()
		return nil, nil, s.getErr
	}
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, nil, session.ErrNotFound
	}
	cp := *sess
	s.mu.Unlock()

	usr, err := s.users.GetByID(ctx, cp.UserID)
	if err != nil {
		return nil, nil, session.ErrNotFound
	}
	return &cp, usr, nil
}

func (s *memSessionStore) UpdateExpiry(_ context.Context, id string, newExpiry time.Time) error {
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

func (s *memSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, id)
	return nil
}

// memRefreshStore is a mutex-guarded in-memory refresh.Store.
type memRefreshStore struct {
	mu   sync.Mutex
	jtis map[string]string // userID -> live jti

	replaceErr error
	existsErr  error
}

func newMemRefreshStore() *memRefreshStore {
	return &memRefreshStore{jtis: make(map[string]string)}
}

func (s *memRefreshStore) Replace(_ context.Context, jti, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.jtis[userID] = jti
	return nil
}

func (s *memRefreshStore) Exists(_ context.Context, jti, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.jtis[userID] == jti, nil
}

func (s *memRefreshStore) DeleteByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jtis, userID)
	return nil
}
