package user

import "errors"

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when inserting a user whose username
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")
)
