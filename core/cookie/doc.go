// Package cookie manages HTTP cookie operations for the auth boundary.
//
// The Manager carries secure defaults (Path=/, HttpOnly, SameSite=Lax) and
// applies per-call functional options on top. The session cookie stores the
// raw opaque token as-is: the value is already 144 bits of CSPRNG output
// whose server-side counterpart is a one-way digest, so signing or
// encrypting it would add nothing.
//
// Usage:
//
//	mgr := cookie.New(cookie.WithSecure(true))
//	mgr.Set(w, "auth_session", rawToken, cookie.WithExpires(sess.ExpiresAt))
//	mgr.Delete(w, "auth_session")
package cookie
