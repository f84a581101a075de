package refresh

import "context"

// Store persists refresh-token records keyed by jti with at most one record
// per user. Implementations must make Replace atomic with respect to
// concurrent calls for the same user: two racing replacements must never
// leave two live records, and the last writer wins.
type Store interface {
	// Replace deletes any existing record for userID and inserts
	// {jti, userID} as a single atomic unit.
	Replace(ctx context.Context, jti, userID string) error
	// Exists reports whether {jti, userID} is the live record.
	Exists(ctx context.Context, jti, userID string) (bool, error)
	// DeleteByUser removes the user's record, if any.
	DeleteByUser(ctx context.Context, userID string) error
}
