package jwt

import (
	"errors"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Service signs and verifies tokens with a single symmetric key and the
// pinned HMAC-SHA256 algorithm. Safe for concurrent use.
type Service struct {
	signingKey []byte
}

// New creates a JWT service with the given signing key.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a JWT service from a string signing key.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate signs the given claims with HMAC-SHA256.
func (s *Service) Generate(claims jwtlib.Claims) (string, error) {
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// Parse verifies tokenStr and decodes its claims into claims. The signature
// is verified before any claim is trusted; tokens naming any algorithm other
// than HS256 (including "none") are rejected with ErrAlgorithmMismatch.
func (s *Service) Parse(tokenStr string, claims jwtlib.Claims) error {
	_, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok || t.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
			return nil, ErrAlgorithmMismatch
		}
		return s.signingKey, nil
	})
	if err != nil {
		return classifyParseError(err)
	}
	return nil
}

// classifyParseError collapses the underlying library's error surface into
// this package's sentinel taxonomy.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, ErrAlgorithmMismatch):
		return errors.Join(ErrAlgorithmMismatch, err)
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return errors.Join(ErrInvalidSignature, err)
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	default:
		return errors.Join(ErrMalformed, err)
	}
}
