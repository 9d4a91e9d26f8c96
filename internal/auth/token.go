package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in access tokens: the registered
// subject/expiry plus the user's email.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenCodec issues and parses signed access tokens. Signing is HS256 with a
// server-held secret; every token carries a mandatory expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given secret and token lifetime
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the subject user id and email
func (c *TokenCodec) Issue(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email: email,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the claims. Any failure
// (bad signature, wrong algorithm, expiry, missing fields) returns ok=false
// rather than an error.
func (c *TokenCodec) Parse(tokenString string) (*TokenClaims, bool) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	// jwt/v5 validates exp when present; require it explicitly
	if claims.ExpiresAt == nil || claims.Subject == "" || claims.Email == "" {
		return nil, false
	}

	return claims, true
}
