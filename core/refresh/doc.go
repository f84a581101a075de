// Package refresh tracks the single live refresh-token identifier per user.
//
// A refresh JWT is only exchangeable while its jti is recorded here; minting
// a new refresh token atomically supersedes the previous record, so an old
// token stops working the instant a new one exists. That uniqueness is a
// security invariant, not an optimization — the registry, not an expiry
// claim, bounds a refresh token's lifetime.
package refresh
