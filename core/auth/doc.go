// Package auth is the façade over the credential core: it classifies inbound
// credentials, dispatches validation to the session manager or the JWT
// issuer plus refresh registry, and yields an authenticated identity or a
// rejection.
//
// Two independent credential channels exist. The cookie channel resolves an
// opaque session token to a (user, session) pair with sliding renewal; an
// absent or dead session is the anonymous state, not an error. The bearer
// channel verifies a stateless access JWT and fails closed: a missing or
// malformed Authorization header is terminal for a bearer-protected route.
// A request may be authenticated via one channel, both, or neither; route
// classification belongs to the caller.
//
// Credential rejections are converted to a uniform 401 at the HTTP boundary.
// The internal distinction (bad signature, wrong algorithm, rotated jti,
// unknown session) is logged server-side and never surfaced in a response
// body. Infrastructure failures are kept separate: ErrStoreUnavailable maps
// to a 5xx, never to a credential rejection.
package auth
