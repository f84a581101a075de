package session

import "errors"

var (
	// ErrNotFound is returned by stores when no session matches the ID.
	ErrNotFound = errors.New("session not found")
	// ErrMissingToken is returned when creating a session with an empty token.
	ErrMissingToken = errors.New("session token is required")
	// ErrMissingUserID is returned when creating a session without a user.
	ErrMissingUserID = errors.New("user id is required")
	// ErrSaveSession is returned when persisting a session fails.
	ErrSaveSession = errors.New("failed to save session")
	// ErrRenewSession is returned when extending a session's expiry fails.
	ErrRenewSession = errors.New("failed to renew session")
	// ErrDeleteSession is returned when deleting a session fails.
	ErrDeleteSession = errors.New("failed to delete session")
)
