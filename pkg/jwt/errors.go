package jwt

import "errors"

var (
	// ErrMissingSigningKey is returned when a service is created without a key.
	ErrMissingSigningKey = errors.New("missing signing key")
	// ErrInvalidSignature is returned when signature verification fails.
	ErrInvalidSignature = errors.New("token signature verification failed")
	// ErrAlgorithmMismatch is returned when a token's algorithm is not the
	// pinned HMAC-SHA256.
	ErrAlgorithmMismatch = errors.New("token signed with unexpected algorithm")
	// ErrExpiredToken is returned when a token is past its expiry claim.
	ErrExpiredToken = errors.New("token has expired")
	// ErrMalformed is returned when a token or its claims cannot be decoded.
	ErrMalformed = errors.New("malformed token")
)
