package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

const googleIssuer = "https://accounts.google.com"

// ErrNoClientID is returned when Google sign-in is attempted without a
// configured client ID.
var ErrNoClientID = errors.New("google client id is not configured")

// GoogleVerifier validates Google ID tokens against the configured client ID.
// Discovery is deferred to first use so the server can boot without network
// access to Google.
type GoogleVerifier struct {
	clientID string
	// insecureFallback permits decoding the token payload without
	// signature verification when online verification fails. Development
	// aid only; every use is logged.
	insecureFallback bool

	once     sync.Once
	verifier *gooidc.IDTokenVerifier
	initErr  error
}

func NewGoogleVerifier(clientID string, insecureFallback bool) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID, insecureFallback: insecureFallback}
}

// ClientID returns the public client ID for the frontend sign-in widget.
func (g *GoogleVerifier) ClientID() string {
	return g.clientID
}

// VerifyEmail validates a raw ID token and returns its email claim.
func (g *GoogleVerifier) VerifyEmail(ctx context.Context, rawToken string) (string, error) {
	if g.clientID == "" {
		return "", ErrNoClientID
	}

	g.once.Do(func() {
		provider, err := gooidc.NewProvider(context.Background(), googleIssuer)
		if err != nil {
			g.initErr = fmt.Errorf("google discovery: %w", err)
			return
		}
		g.verifier = provider.Verifier(&gooidc.Config{ClientID: g.clientID})
	})

	email, err := g.verifyOnline(ctx, rawToken)
	if err == nil {
		return email, nil
	}

	if g.insecureFallback {
		log.Printf("warning: google token verification failed (%v), trying unverified decode", err)
		if email, fbErr := decodeEmailUnverified(rawToken); fbErr == nil {
			log.Printf("warning: accepted UNVERIFIED google token for %s", email)
			return email, nil
		}
	}

	return "", err
}

func (g *GoogleVerifier) verifyOnline(ctx context.Context, rawToken string) (string, error) {
	if g.initErr != nil {
		return "", g.initErr
	}
	idToken, err := g.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", fmt.Errorf("verify id token: %w", err)
	}
	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", fmt.Errorf("decode token claims: %w", err)
	}
	if claims.Email == "" {
		return "", fmt.Errorf("id token has no email claim")
	}
	return claims.Email, nil
}

// decodeEmailUnverified extracts the email claim without checking the token
// signature. Only reachable behind the insecure dev fallback flag.
func decodeEmailUnverified(rawToken string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return "", fmt.Errorf("decode unverified token: %w", err)
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("unverified token has no email claim")
	}
	return email, nil
}
