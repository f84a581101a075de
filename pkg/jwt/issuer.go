package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// defaultAccessTTL is the fixed validity of access tokens.
const defaultAccessTTL = time.Hour

// AccessClaims is the claim set of an access token: {sub, iat, exp}.
type AccessClaims struct {
	jwtlib.RegisteredClaims
}

// RefreshClaims is the claim set of a refresh token: {sub, jti, username,
// iat}. Deliberately carries no expiry claim; the token's lifetime is bound
// to its registry record.
type RefreshClaims struct {
	Username string `json:"username"`
	jwtlib.RegisteredClaims
}

// Issuer mints and verifies the access/refresh token pair with two distinct
// signing keys. A token signed with one key never verifies against the
// other.
type Issuer struct {
	access    *Service
	refresh   *Service
	accessTTL time.Duration
	now       func() time.Time
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithAccessTTL overrides the access-token validity window.
func WithAccessTTL(ttl time.Duration) IssuerOption {
	return func(i *Issuer) {
		if ttl > 0 {
			i.accessTTL = ttl
		}
	}
}

// WithClock overrides the issuer's clock. Intended for tests.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// NewIssuer creates an issuer over distinct access and refresh signing keys.
func NewIssuer(accessKey, refreshKey []byte, opts ...IssuerOption) (*Issuer, error) {
	access, err := New(accessKey)
	if err != nil {
		return nil, err
	}
	refresh, err := New(refreshKey)
	if err != nil {
		return nil, err
	}

	i := &Issuer{
		access:    access,
		refresh:   refresh,
		accessTTL: defaultAccessTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// IssueAccessToken signs a stateless access token for userID and returns it
// together with its absolute expiry.
func (i *Issuer) IssueAccessToken(userID string) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.accessTTL)

	claims := AccessClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	}

	tok, err := i.access.Generate(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, expiresAt, nil
}

// IssueRefreshToken signs a refresh token binding userID, jti, and username.
// No expiry claim is set: the token stays exchangeable exactly as long as
// its jti is live in the refresh registry.
func (i *Issuer) IssueRefreshToken(userID, jti, username string) (string, error) {
	claims := RefreshClaims{
		Username: username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:  userID,
			ID:       jti,
			IssuedAt: jwtlib.NewNumericDate(i.now()),
		},
	}
	return i.refresh.Generate(claims)
}

// VerifyAccess verifies an access token against the access key and returns
// its claims.
func (i *Issuer) VerifyAccess(tokenStr string) (*AccessClaims, error) {
	var claims AccessClaims
	if err := i.access.Parse(tokenStr, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// VerifyRefresh verifies a refresh token against the refresh key and returns
// its claims.
func (i *Issuer) VerifyRefresh(tokenStr string) (*RefreshClaims, error) {
	var claims RefreshClaims
	if err := i.refresh.Parse(tokenStr, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// AccessTTL returns the fixed access-token validity window.
func (i *Issuer) AccessTTL() time.Duration {
	return i.accessTTL
}
