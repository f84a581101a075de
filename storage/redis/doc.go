// Package redis provides a Redis-backed refresh-token store.
//
// Each user has a single key holding the live jti, so rotation is one atomic
// SET: the previous value is overwritten and the superseded token stops
// exchanging immediately, with last-writer-wins semantics under concurrent
// rotation. Useful when the refresh registry should live apart from the
// relational store, for example when several API instances share one token
// registry.
package redis
