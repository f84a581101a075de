// Package memory provides in-memory implementations of the auth storage
// interfaces: user, session, and refresh-token stores backed by
// mutex-guarded maps.
//
// Intended for tests and local development; nothing survives a restart. All
// stores are safe for concurrent use and honor the same contracts as the
// persistent implementations, including monotonic session-expiry updates and
// last-writer-wins refresh rotation.
package memory
