package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-google"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}

func TestVerifyEmail_NoClientID(t *testing.T) {
	g := NewGoogleVerifier("", false)
	_, err := g.VerifyEmail(context.Background(), "whatever")
	if !errors.Is(err, ErrNoClientID) {
		t.Errorf("err = %v, want ErrNoClientID", err)
	}
}

// brokenDiscovery consumes the verifier's init step with a failure, as if
// provider discovery were unreachable.
func brokenDiscovery(g *GoogleVerifier) {
	g.once.Do(func() { g.initErr = errors.New("discovery unreachable") })
}

func TestVerifyEmail_FallbackDisabled(t *testing.T) {
	g := NewGoogleVerifier("client-id", false)
	brokenDiscovery(g)

	token := signedTestToken(t, jwt.MapClaims{"email": "dev@example.com"})
	if _, err := g.VerifyEmail(context.Background(), token); err == nil {
		t.Error("unverifiable token accepted with the fallback off")
	}
}

func TestVerifyEmail_FallbackEnabled(t *testing.T) {
	g := NewGoogleVerifier("client-id", true)
	brokenDiscovery(g)

	token := signedTestToken(t, jwt.MapClaims{"email": "dev@example.com"})
	email, err := g.VerifyEmail(context.Background(), token)
	if err != nil {
		t.Fatalf("fallback verify: %v", err)
	}
	if email != "dev@example.com" {
		t.Errorf("email = %q, want dev@example.com", email)
	}
}

func TestDecodeEmailUnverified(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{"email": "dev@example.com"})
	email, err := decodeEmailUnverified(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if email != "dev@example.com" {
		t.Errorf("email = %q, want dev@example.com", email)
	}
}

func TestDecodeEmailUnverified_MissingEmail(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{"sub": "123"})
	if _, err := decodeEmailUnverified(token); err == nil {
		t.Error("token without email claim decoded")
	}
}

func TestDecodeEmailUnverified_Garbage(t *testing.T) {
	if _, err := decodeEmailUnverified("not.a.jwt"); err == nil {
		t.Error("garbage token decoded")
	}
}
