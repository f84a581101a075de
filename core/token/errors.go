package token

import "errors"

var (
	// ErrTokenGeneration is returned when the random source fails.
	ErrTokenGeneration = errors.New("failed to generate token")
	// ErrInvalidID is returned when an entity ID cannot be decoded.
	ErrInvalidID = errors.New("invalid entity id")
)
