// Package session persists and validates browser sessions backed by opaque
// tokens. The client holds the raw token in a cookie; the server stores only
// its SHA-256 digest, which is the session's primary key.
//
// Sessions live for 30 days and renew on use: a validation inside the last
// 15 days of the validity window slides the expiration forward to a full 30
// days, so active users never see a login prompt while idle sessions lapse.
// Expiration is checked lazily on access; expired rows are deleted during
// validation, never swept by a background job.
//
// The Manager owns the policy; persistence is behind the Store interface so
// the storage engine stays swappable (see storage/postgres, storage/memory).
package session
