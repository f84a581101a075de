// Package jwt signs and verifies the compact JWTs of the access/refresh
// token pair. The signing algorithm is pinned to HMAC-SHA256: verification
// rejects any token whose header names a different algorithm (including
// "none") before a single claim is trusted.
//
// Two key roles exist and must never be mixed: the access key signs
// short-lived stateless access tokens carrying {sub, iat, exp}; the refresh
// key signs refresh tokens carrying {sub, jti, username, iat} with no
// expiry claim — a refresh token's lifetime is governed entirely by its
// registry record (see core/refresh).
//
// Usage:
//
//	issuer, err := jwt.NewIssuer([]byte(accessSecret), []byte(refreshSecret))
//	if err != nil {
//		return err
//	}
//
//	access, expiresAt, err := issuer.IssueAccessToken(userID)
//	refresh, err := issuer.IssueRefreshToken(userID, jti, username)
//
//	claims, err := issuer.VerifyAccess(access)
//	switch {
//	case errors.Is(err, jwt.ErrInvalidSignature):
//		// wrong key or tampered token
//	case errors.Is(err, jwt.ErrAlgorithmMismatch):
//		// unpinned algorithm, fail closed
//	case errors.Is(err, jwt.ErrMalformed):
//		// not a JWT / undecodable claims
//	}
package jwt
