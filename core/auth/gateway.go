package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gridpass/authcore/core/logger"
	"github.com/gridpass/authcore/core/refresh"
	"github.com/gridpass/authcore/core/session"
	"github.com/gridpass/authcore/core/user"
	"github.com/gridpass/authcore/pkg/jwt"
)

// Identity is the result of bearer-channel authentication. Identity comes
// from verified claims only; no user row is fetched for bearer requests, and
// that strategy is applied uniformly across routes.
type Identity struct {
	UserID   string
	Username string
}

// Gateway orchestrates credential validation across both channels and the
// refresh exchange. Stateless; safe for concurrent use.
type Gateway struct {
	sessions *session.Manager
	registry *refresh.Registry
	issuer   *jwt.Issuer
	log      *slog.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets the logger for server-side classification of rejected
// credentials. Defaults to a discard logger.
func WithLogger(log *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGateway creates the auth gateway over its three collaborators.
func NewGateway(sessions *session.Manager, registry *refresh.Registry, issuer *jwt.Issuer, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		sessions: sessions,
		registry: registry,
		issuer:   issuer,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Authenticate resolves the cookie-channel credential. An empty token or a
// token with no live session yields (nil, nil, nil): anonymous is a valid
// outcome for this channel. A non-nil error is an infrastructure failure.
func (g *Gateway) Authenticate(ctx context.Context, rawToken string) (*user.User, *session.Session, error) {
	if rawToken == "" {
		return nil, nil, nil
	}

	sess, usr, err := g.sessions.Validate(ctx, rawToken)
	if err != nil {
		g.log.ErrorContext(ctx, "session validation failed", logger.Component("auth.gateway"), logger.Error(err))
		return nil, nil, errors.Join(ErrStoreUnavailable, err)
	}
	return usr, sess, nil
}

// VerifyBearer authenticates the bearer channel from the raw Authorization
// header value. It requires the exact "Bearer <token>" shape and a valid
// access JWT; any failure is terminal for the protected route. The reason
// for a rejection is logged here and must not reach the response body.
func (g *Gateway) VerifyBearer(ctx context.Context, authorization string) (Identity, error) {
	if authorization == "" {
		return Identity{}, ErrUnauthenticated
	}

	scheme, tok, found := strings.Cut(authorization, " ")
	if !found || scheme != "Bearer" || tok == "" {
		g.log.WarnContext(ctx, "malformed authorization header", logger.Component("auth.gateway"))
		return Identity{}, ErrInvalidCredential
	}

	claims, err := g.issuer.VerifyAccess(tok)
	if err != nil {
		g.log.WarnContext(ctx, "access token rejected", logger.Component("auth.gateway"), logger.Error(err))
		return Identity{}, err
	}

	// Access tokens carry {sub} only; username stays empty under the
	// claims-only strategy.
	return Identity{UserID: claims.Subject}, nil
}

// ExchangeRefreshToken verifies a refresh JWT against the refresh key,
// requires its {jti, sub} pair to be the user's live registry record, and
// mints a fresh access token with its absolute expiry. The refresh token is
// not rotated by an exchange; only IssueRefreshToken rotates.
func (g *Gateway) ExchangeRefreshToken(ctx context.Context, refreshJWT string) (string, time.Time, error) {
	claims, err := g.issuer.VerifyRefresh(refreshJWT)
	if err != nil {
		g.log.WarnContext(ctx, "refresh token rejected", logger.Component("auth.gateway"), logger.Error(err))
		return "", time.Time{}, errors.Join(ErrInvalidRefreshToken, err)
	}

	live, err := g.registry.IsLive(ctx, claims.ID, claims.Subject)
	if err != nil {
		g.log.ErrorContext(ctx, "refresh registry lookup failed", logger.Component("auth.gateway"), logger.Error(err))
		return "", time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if !live {
		g.log.WarnContext(ctx, "refresh token not live", logger.Component("auth.gateway"), logger.ID("user_id", claims.Subject))
		return "", time.Time{}, ErrInvalidRefreshToken
	}

	accessToken, expiresAt, err := g.issuer.IssueAccessToken(claims.Subject)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiresAt, nil
}

// IssueRefreshToken rotates the user's registry record and signs a refresh
// JWT carrying the new jti. The raw token is returned once and never stored;
// the previous refresh token stops working the moment this returns.
func (g *Gateway) IssueRefreshToken(ctx context.Context, userID, username string) (string, error) {
	jti, err := g.registry.Rotate(ctx, userID)
	if err != nil {
		g.log.ErrorContext(ctx, "refresh rotation failed", logger.Component("auth.gateway"), logger.Error(err))
		return "", errors.Join(ErrStoreUnavailable, err)
	}
	return g.issuer.IssueRefreshToken(userID, jti, username)
}

// RevokeRefreshTokens deletes the user's refresh registry record. Used on
// logout and security events.
func (g *Gateway) RevokeRefreshTokens(ctx context.Context, userID string) error {
	if err := g.registry.RevokeAll(ctx, userID); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
