package refresh

import "errors"

var (
	// ErrMissingUserID is returned when an operation targets an empty user id.
	ErrMissingUserID = errors.New("user id is required")
	// ErrRotate is returned when superseding the refresh-token record fails.
	ErrRotate = errors.New("failed to rotate refresh token")
	// ErrRevoke is returned when revoking refresh-token records fails.
	ErrRevoke = errors.New("failed to revoke refresh tokens")
)
