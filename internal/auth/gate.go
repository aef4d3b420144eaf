// Package auth implements the admin gate: a shared-secret header check and a
// Google sign-in path, both of which resolve to a short-lived signed session
// token. The static admin password is never handed back to a client.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// PasswordHeader carries the shared admin secret on direct API calls.
const PasswordHeader = "x-admin-password"

// Gate authenticates admin requests.
type Gate struct {
	password      string
	sessions      *Sessions
	allowedEmails map[string]bool
}

func NewGate(password string, sessions *Sessions, allowedEmails []string) *Gate {
	allowed := make(map[string]bool, len(allowedEmails))
	for _, e := range allowedEmails {
		allowed[strings.ToLower(e)] = true
	}
	return &Gate{password: password, sessions: sessions, allowedEmails: allowed}
}

// CheckPassword compares a candidate against the admin secret in constant time.
func (g *Gate) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1
}

// EmailAllowed reports whether an identity-provider email may administer the
// site. An empty allow-list admits nobody.
func (g *Gate) EmailAllowed(email string) bool {
	return g.allowedEmails[strings.ToLower(email)]
}

// Sessions exposes the session token service for login handlers.
func (g *Gate) Sessions() *Sessions {
	return g.sessions
}

// Authenticated reports whether the request carries either the admin password
// header or a valid Bearer session token.
func (g *Gate) Authenticated(r *http.Request) bool {
	if p := r.Header.Get(PasswordHeader); p != "" && g.CheckPassword(p) {
		return true
	}
	if bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "); bearer != r.Header.Get("Authorization") {
		if _, err := g.sessions.Verify(bearer); err == nil {
			return true
		}
	}
	return false
}
