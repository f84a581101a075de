// Package authcore is the credential issuance, validation, and rotation core
// for a telemetry-tracking service.
//
// It authenticates two independent channels. Browser traffic uses opaque
// session cookies with sliding 30-day expiration; the store only ever sees
// the SHA-256 digest of a token, never the token itself. API traffic uses a
// JWT pair: short-lived stateless access tokens and long-lived refresh
// tokens whose validity is bound to a server-side registry that keeps at
// most one live refresh token per user.
//
// Package layout follows the core/pkg split: core/ holds the domain
// (token codec, user, session, refresh registry, auth gateway and account
// service), pkg/ holds reusable leaf utilities (jwt issuer, client IP,
// user-agent classification), middleware/ the net/http chain, and storage/
// the Postgres, Redis, and in-memory store implementations.
package authcore
