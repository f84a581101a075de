package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"time"
)

const (
	// sessionTokenBytes is the raw entropy of a session token (144 bits).
	sessionTokenBytes = 18

	// idLength is the fixed length of an entity ID.
	idLength = 15

	// idEntropyChars is the number of trailing entropy characters in an ID.
	idEntropyChars = 6

	base62Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// base32Lower encodes session tokens in lowercase without padding,
// keeping them cookie-safe and case-stable.
var base32Lower = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// idEntropyMax is 62^6, the exclusive upper bound for ID entropy.
var idEntropyMax = new(big.Int).Exp(big.NewInt(62), big.NewInt(idEntropyChars), nil)

// GenerateSessionToken returns a new opaque session token: 18 bytes from a
// cryptographically secure random source, base32-encoded lowercase without
// padding. The raw value is handed to the client and never persisted.
func GenerateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base32Lower.EncodeToString(b), nil
}

// Digest returns the storage-safe identity of a raw session token:
// the lowercase hex SHA-256 of its UTF-8 bytes. Deterministic and one-way;
// the result is the persisted Session ID.
func Digest(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

// GenerateID returns a 15-character, globally unique identifier ordered by
// creation time at millisecond granularity: the current Unix millisecond
// timestamp in base62 followed by six base62 digits of random entropy,
// right-padded with "0" and truncated to exactly 15 chars.
func GenerateID() (string, error) {
	return generateIDAt(time.Now())
}

func generateIDAt(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, idEntropyMax)
	if err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	id := encodeBase62(now.UnixMilli()) + encodeBase62(n.Int64())
	if len(id) < idLength {
		id += strings.Repeat("0", idLength-len(id))
	}
	return id[:idLength], nil
}

// DecodeIDTime recovers the approximate creation time encoded in the leading
// segment of an entity ID. Millisecond granularity; intended for diagnostics,
// not ordering guarantees.
func DecodeIDTime(id string) (time.Time, error) {
	if len(id) <= idEntropyChars {
		return time.Time{}, ErrInvalidID
	}

	millis, err := decodeBase62(id[:len(id)-idEntropyChars])
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(millis), nil
}

func encodeBase62(n int64) string {
	if n <= 0 {
		return ""
	}
	var out []byte
	for n > 0 {
		out = append([]byte{base62Charset[n%62]}, out...)
		n /= 62
	}
	return string(out)
}

func decodeBase62(s string) (int64, error) {
	var n int64
	for i := range len(s) {
		idx := strings.IndexByte(base62Charset, s[i])
		if idx < 0 {
			return 0, ErrInvalidID
		}
		n = n*62 + int64(idx)
	}
	return n, nil
}
