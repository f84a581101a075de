package auth

import (
	"context"

	"github.com/gridpass/authcore/core/session"
	"github.com/gridpass/authcore/core/user"
)

// sessionContextKey carries the cookie-channel (user, session) pair.
type sessionContextKey struct{}

// identityContextKey carries the bearer-channel identity.
type identityContextKey struct{}

type sessionValue struct {
	user    *user.User
	session *session.Session
}

// WithSession stores the cookie-channel authentication result in ctx.
// Both values may be nil for an anonymous request.
func WithSession(ctx context.Context, usr *user.User, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sessionValue{user: usr, session: sess})
}

// SessionFromContext returns the cookie-channel (user, session) pair.
// (nil, nil) means the request is anonymous on that channel.
func SessionFromContext(ctx context.Context) (*user.User, *session.Session) {
	v, ok := ctx.Value(sessionContextKey{}).(sessionValue)
	if !ok {
		return nil, nil
	}
	return v.user, v.session
}

// WithIdentity stores the bearer-channel identity in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext returns the bearer-channel identity, if present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
