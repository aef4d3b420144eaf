package auth

import (
	"crypto/rand"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions issues and verifies short-lived HS256 admin session tokens.
type Sessions struct {
	secret   []byte
	lifetime time.Duration
}

// sessionClaims is the token payload: who logged in and the standard expiry.
type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// NewSessions builds the token service. With no configured secret a random
// per-process one is generated, which invalidates outstanding sessions on
// restart.
func NewSessions(secret string, lifetime time.Duration) *Sessions {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("generate session secret: %v", err))
		}
		log.Printf("warning: PORTFOLIO_SESSION_SECRET is not set, sessions will not survive restarts")
	}
	return &Sessions{secret: key, lifetime: lifetime}
}

// Issue returns a signed session token for the given admin identity. The
// email is empty for password logins.
func (s *Sessions) Issue(email string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the email claim.
func (s *Sessions) Verify(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject != "admin" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.Email, nil
}
