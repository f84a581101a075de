// Package token generates the credential material used across the auth core:
// opaque session tokens, their storage digests, and time-ordered entity IDs.
//
// Session tokens are 18 bytes of CSPRNG output encoded as lowercase base32
// without padding. The raw token is held only by the client; the server
// persists its SHA-256 digest, which serves as the session's primary key.
//
// Entity IDs are 15-character base62 strings whose leading segment encodes
// the creation timestamp in milliseconds, ordering IDs by creation time.
// The trailing six characters are random entropy.
// IDs are used for users and for JWT jti values.
//
// Usage:
//
//	raw, err := token.GenerateSessionToken()
//	if err != nil {
//		return err
//	}
//	sessionID := token.Digest(raw)
//
//	id, err := token.GenerateID()
//	createdAt, _ := token.DecodeIDTime(id) // approximate, millisecond granularity
package token
