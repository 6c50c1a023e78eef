// Package app holds the application services and business logic.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"threadboard/internal/config"
)

var (
	// ErrTokenExpired indicates the token's signed expiry has passed.
	ErrTokenExpired = errors.New("session token expired")
	// ErrTokenInvalid indicates the signature did not verify.
	ErrTokenInvalid = errors.New("session token signature invalid")
	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = errors.New("session token malformed")
)

// TokenCodec signs and verifies stateless session tokens. Both sides use
// the single shared secret from the configuration.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec from the application configuration.
func NewTokenCodec(cfg *config.Config) *TokenCodec {
	return &TokenCodec{secret: []byte(cfg.SessionSecret), ttl: cfg.TokenTTL}
}

type sessionClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given user and returns it with its expiry,
// computed as issue time plus the configured window.
func (c *TokenCodec) Issue(userID int64) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)

	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify parses a token and returns the user id it was issued for. It
// fails with exactly one of ErrTokenExpired, ErrTokenInvalid or
// ErrTokenMalformed; callers must reject on all three identically.
func (c *TokenCodec) Verify(tokenString string) (int64, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenInvalid
		default:
			return 0, ErrTokenMalformed
		}
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenMalformed
	}
	return claims.UserID, nil
}
