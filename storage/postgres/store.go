package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridpass/authcore/core/refresh"
	"github.com/gridpass/authcore/core/session"
	"github.com/gridpass/authcore/core/user"
)

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so store
// methods can run against either.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store exposes the PostgreSQL-backed views of the auth storage interfaces.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store over an established pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Users returns the user-store view.
func (s *Store) Users() user.Store { return userStore{s} }

// Sessions returns the session-store view.
func (s *Store) Sessions() session.Store { return sessionStore{s} }

// RefreshTokens returns the refresh-token-store view.
func (s *Store) RefreshTokens() refresh.Store { return refreshStore{s} }

// q returns the context transaction when one is attached, the pool
// otherwise.
func (s *Store) q(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

type userStore struct{ *Store }

func (s userStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	return s.scanUser(s.q(ctx).QueryRow(ctx,
		`SELECT id, username, password_hash, avatar, flag, joined_at FROM users WHERE id = $1`, id))
}

func (s userStore) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.scanUser(s.q(ctx).QueryRow(ctx,
		`SELECT id, username, password_hash, avatar, flag, joined_at FROM users WHERE username = $1`, username))
}

func (s userStore) scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordDigest, &u.Avatar, &u.Flag, &u.JoinedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s userStore) Insert(ctx context.Context, u *user.User) error {
	joinedAt := u.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}

	_, err := s.q(ctx).Exec(ctx,
		`INSERT INTO users (id, username, password_hash, avatar, flag, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.PasswordDigest, u.Avatar, u.Flag, joinedAt)
	if err != nil {
		if IsDuplicateKey(err) {
			return user.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s userStore) UpdateProfile(ctx context.Context, id string, p user.Profile) error {
	tag, err := s.q(ctx).Exec(ctx,
		`UPDATE users SET avatar = $2, flag = $3 WHERE id = $1`, id, p.Avatar, p.Flag)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

type sessionStore struct{ *Store }

func (s sessionStore) Insert(ctx context.Context, sess *session.Session) error {
	_, err := s.q(ctx).Exec(ctx,
		`INSERT INTO sessions (id, user_id, expires_at, ip, country, city, region, device_type, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sess.ID, sess.UserID, sess.ExpiresAt,
		sess.Metadata.IP, sess.Metadata.Country, sess.Metadata.City, sess.Metadata.Region,
		sess.Metadata.DeviceType, sess.Metadata.UserAgent)
	return err
}

func (s sessionStore) GetJoinUser(ctx context.Context, id string) (*session.Session, *user.User, error) {
	row := s.q(ctx).QueryRow(ctx,
		`SELECT s.id, s.user_id, s.expires_at,
		        s.ip, s.country, s.city, s.region, s.device_type, s.user_agent,
		        u.id, u.username, u.password_hash, u.avatar, u.flag, u.joined_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id = $1`, id)

	var sess session.Session
	var u user.User
	err := row.Scan(
		&sess.ID, &sess.UserID, &sess.ExpiresAt,
		&sess.Metadata.IP, &sess.Metadata.Country, &sess.Metadata.City, &sess.Metadata.Region,
		&sess.Metadata.DeviceType, &sess.Metadata.UserAgent,
		&u.ID, &u.Username, &u.PasswordDigest, &u.Avatar, &u.Flag, &u.JoinedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil, session.ErrNotFound
		}
		return nil, nil, err
	}
	return &sess, &u, nil
}

// UpdateExpiry extends a session's expiration. GREATEST makes the update
// monotonic under concurrent renewals: a slower writer can never shorten an
// expiry already extended by a faster one.
func (s sessionStore) UpdateExpiry(ctx context.Context, id string, newExpiry time.Time) error {
	tag, err := s.q(ctx).Exec(ctx,
		`UPDATE sessions SET expires_at = GREATEST(expires_at, $2) WHERE id = $1`, id, newExpiry)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s sessionStore) Delete(ctx context.Context, id string) error {
	_, err := s.q(ctx).Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

type refreshStore struct{ *Store }

// Replace upserts the user's single refresh-token row. The ON CONFLICT
// clause makes rotation atomic: concurrent rotations resolve to the last
// writer's jti.
func (s refreshStore) Replace(ctx context.Context, jti, userID string) error {
	_, err := s.q(ctx).Exec(ctx,
		`INSERT INTO refresh_tokens (user_id, jti, issued_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET jti = EXCLUDED.jti, issued_at = EXCLUDED.issued_at`,
		userID, jti)
	if err != nil && IsForeignKeyViolation(err) {
		return errors.Join(user.ErrNotFound, err)
	}
	return err
}

func (s refreshStore) Exists(ctx context.Context, jti, userID string) (bool, error) {
	var exists bool
	err := s.q(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM refresh_tokens WHERE user_id = $1 AND jti = $2)`,
		userID, jti).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s refreshStore) DeleteByUser(ctx context.Context, userID string) error {
	_, err := s.q(ctx).Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}
