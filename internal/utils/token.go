package utils // helpers for session token issuance and reset-token hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is a signed JWT identifying the admin session along with
// its expiry. It is delivered to the client in an http-only cookie.
type SessionToken struct {
	Token string
	Exp   time.Time
}

// ResetToken is the raw password-reset token mailed to the user plus its
// expiry. Only a SHA-256 hash of the raw value is stored.
type ResetToken struct {
	Raw string
	Exp time.Time
}

// NewSessionToken builds and signs an HS256 JWT for the user. Claims are
// the user id (sub), expiration (exp) and issued-at (iat).
func NewSessionToken(secret, userID string, ttlDays int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// NewResetToken returns a cryptographically secure random token and its
// expiry. Reset tokens are valid for fifteen minutes.
func NewResetToken() (ResetToken, error) {
	raw, err := randomHex(20) // 20 bytes -> 40 hex chars
	if err != nil {
		return ResetToken{}, err
	}
	return ResetToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(15 * time.Minute),
	}, nil
}

// HashResetRaw returns the SHA-256 hash of a raw reset token as a hex
// string. Only the hash is persisted, so a leaked database row cannot be
// redeemed.
func HashResetRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
