package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/asharish/portfolio-api/internal/auth"
)

// authHandler serves the login endpoints. Both paths end in a short-lived
// signed session token; the static admin password never leaves the server.
type authHandler struct {
	gate   *auth.Gate
	google *auth.GoogleVerifier
}

func newAuthHandler(deps Deps) *authHandler {
	return &authHandler{gate: deps.Gate, google: deps.Google}
}

// GetConfig exposes the public Google client ID for the sign-in widget.
// GET /api/auth/config
func (h *authHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AuthConfigResponse{ClientID: h.google.ClientID()})
}

// Login exchanges the admin password for a session token.
// POST /api/auth/login
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if !h.gate.CheckPassword(req.Password) {
		writeError(w, http.StatusUnauthorized, "unauthorized: invalid admin credentials", "UNAUTHORIZED")
		return
	}

	token, err := h.gate.Sessions().Issue("")
	if err != nil {
		log.Printf("issue session token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Token: token})
}

// GoogleLogin verifies a Google ID token, checks the email allow-list, and
// issues a session token.
// POST /api/auth/google
func (h *authHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	email, err := h.google.VerifyEmail(r.Context(), req.Token)
	if err == auth.ErrNoClientID {
		log.Printf("google auth attempted without a configured client id")
		writeError(w, http.StatusInternalServerError, "server configuration error: missing client id", "INTERNAL_ERROR")
		return
	}
	if err != nil {
		log.Printf("google auth: %v", err)
		writeError(w, http.StatusUnauthorized, "invalid google token", "UNAUTHORIZED")
		return
	}

	log.Printf("google auth attempt: %s", email)
	if !h.gate.EmailAllowed(email) {
		writeError(w, http.StatusForbidden, "access denied: email not authorized", "FORBIDDEN")
		return
	}

	token, err := h.gate.Sessions().Issue(email)
	if err != nil {
		log.Printf("issue session token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Token: token, UserEmail: email})
}
