package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/gridpass/authcore/core/session"
	"github.com/gridpass/authcore/core/token"
	"github.com/gridpass/authcore/core/user"
)

// Service handles account registration, login, and logout. Password hashing
// is an opaque capability of this package: callers only ever see the digest.
type Service struct {
	users    user.Store
	sessions *session.Manager
}

// NewService creates the account service.
func NewService(users user.Store, sessions *session.Manager) *Service {
	return &Service{users: users, sessions: sessions}
}

// Login is the result of a successful registration or login: the account,
// its fresh session, and the raw session token to hand to the client. The
// raw token exists only in this value; the store holds its digest.
type Login struct {
	User     *user.User
	Session  session.Session
	RawToken string
}

// Register creates a new account and logs it in. The username must be
// unused; the returned error for a taken username is user.ErrUsernameTaken
// so the boundary can render a specific message, while credential mismatches
// elsewhere stay generic.
func (s *Service) Register(ctx context.Context, username, password string, meta session.Metadata) (Login, error) {
	if username == "" || password == "" {
		return Login{}, ErrInvalidUsernameOrPassword
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return Login{}, user.ErrUsernameTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return Login{}, errors.Join(ErrStoreUnavailable, err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Login{}, err
	}

	id, err := token.GenerateID()
	if err != nil {
		return Login{}, err
	}

	usr := &user.User{
		ID:             id,
		Username:       username,
		PasswordDigest: string(digest),
	}
	if err := s.users.Insert(ctx, usr); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return Login{}, err
		}
		return Login{}, errors.Join(ErrStoreUnavailable, err)
	}

	return s.startSession(ctx, usr, meta)
}

// Authenticate verifies a username/password pair and starts a session.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string, meta session.Metadata) (Login, error) {
	usr, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Login{}, ErrInvalidUsernameOrPassword
		}
		return Login{}, errors.Join(ErrStoreUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordDigest), []byte(password)); err != nil {
		return Login{}, ErrInvalidUsernameOrPassword
	}

	return s.startSession(ctx, usr, meta)
}

// Logout invalidates the session. Idempotent.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Invalidate(ctx, sessionID)
}

func (s *Service) startSession(ctx context.Context, usr *user.User, meta session.Metadata) (Login, error) {
	rawToken, err := token.GenerateSessionToken()
	if err != nil {
		return Login{}, err
	}

	sess, err := s.sessions.Create(ctx, rawToken, usr.ID, meta)
	if err != nil {
		return Login{}, errors.Join(ErrStoreUnavailable, err)
	}

	return Login{User: usr, Session: sess, RawToken: rawToken}, nil
}
