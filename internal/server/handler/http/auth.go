// Package http provides HTTP handlers for the admin content API: session
// management, content CRUD, image uploads and quote-request hand-offs.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/modernscene/sitekeeper/internal/auth"
)

// AuthGate defines the session operations required by the HTTP handlers.
type AuthGate interface {
	// Login matches credentials against the stored identity and activates
	// the session on success.
	Login(ctx context.Context, username, password string) (bool, error)
	// Logout clears the session.
	Logout(ctx context.Context) error
	// UpdateCredentials replaces the admin identity.
	UpdateCredentials(ctx context.Context, username, password string) error
	// UpdateAvatar stores a new avatar on the admin identity.
	UpdateAvatar(ctx context.Context, dataURI string) error
}

// AuthHandler handles HTTP requests for session and credential management.
type AuthHandler struct {
	// Gate performs the underlying session operations.
	Gate AuthGate
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login. A credential mismatch is an ordinary 401
// with no state change, not an error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ok, err := h.Gate.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"user":   req.Username,
	})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Logout(r.Context()); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// CredentialsRequest represents the JSON payload for a credential update.
type CredentialsRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateCredentials handles PUT /api/credentials. The confirmation field must
// match the new password before the identity is replaced.
func (h *AuthHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Password != req.ConfirmPassword {
		http.Error(w, "passwords do not match", http.StatusBadRequest)
		return
	}

	err := h.Gate.UpdateCredentials(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrEmptyCredentials), errors.Is(err, auth.ErrPasswordTooShort):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
