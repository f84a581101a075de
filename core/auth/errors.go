package auth

import "errors"

var (
	// ErrUnauthenticated means no credential was presented. For the cookie
	// channel this is a valid state, not a failure; for a bearer-protected
	// route it is terminal.
	ErrUnauthenticated = errors.New("no credential presented")

	// ErrInvalidCredential means the credential had the wrong shape
	// (malformed Authorization header or cookie value).
	ErrInvalidCredential = errors.New("malformed credential")

	// ErrInvalidRefreshToken covers every refresh-exchange rejection:
	// token never issued, superseded by rotation, or revoked on logout.
	// Callers must not surface which case applied.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	// ErrInvalidUsernameOrPassword is the single generic rejection for
	// login and registration credential mismatches, regardless of which
	// field was wrong.
	ErrInvalidUsernameOrPassword = errors.New("invalid username or password")

	// ErrPasswordMismatch is returned when registration's password and
	// confirmation differ.
	ErrPasswordMismatch = errors.New("password and confirmation must match")

	// ErrStoreUnavailable is an infrastructure failure, distinct from any
	// credential rejection; it maps to a 5xx at the boundary.
	ErrStoreUnavailable = errors.New("auth store unavailable")
)
