package api_test

import (
	"net/http"
	"testing"

	"github.com/asharish/portfolio-api/internal/api"
)

func TestGetAuthConfig(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "GET", "/api/auth/config", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	cfg := decodeJSON[api.AuthConfigResponse](t, rec)
	if cfg.ClientID != "" {
		t.Errorf("clientId = %q, want empty (none configured)", cfg.ClientID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "POST", "/api/auth/login", api.LoginRequest{Password: "nope"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLogin_IssuesUsableSessionToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/auth/login", api.LoginRequest{Password: testAdminPassword})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeJSON[api.AuthResponse](t, rec)
	if !resp.Success || resp.Token == "" {
		t.Fatalf("response = %+v, want success with token", resp)
	}
	// The token must be a signed session token, never the password itself.
	if resp.Token == testAdminPassword {
		t.Fatal("login echoed the admin password back")
	}

	rec = env.do(t, "GET", "/api/admin/messages", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+resp.Token)
	})
	if rec.Code != http.StatusOK {
		t.Errorf("admin call with session token = %d, want 200", rec.Code)
	}
}

func TestGoogleLogin_NoClientIDConfigured(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "POST", "/api/auth/google", api.GoogleAuthRequest{Token: "some-token"})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when no client id is configured", rec.Code)
	}
}
