package user

import (
	"context"
	"time"
)

// User is the account identity record. The ID is assigned at registration
// and never changes; PasswordDigest is opaque to this package.
type User struct {
	ID             string
	Username       string
	PasswordDigest string

	// Display metadata, mutable after registration.
	Avatar string
	Flag   string

	JoinedAt time.Time
}

// Profile is the mutable display metadata of an account.
type Profile struct {
	Avatar string
	Flag   string
}

// Store is the persistence contract for user records.
// Implementations must be safe for concurrent use.
type Store interface {
	// GetByID returns the user with the given ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByUsername returns the user with the given username, or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Insert persists a new user. Returns ErrUsernameTaken when the
	// username is already in use.
	Insert(ctx context.Context, u *User) error
	// UpdateProfile replaces the user's display metadata.
	UpdateProfile(ctx context.Context, id string, p Profile) error
}
