package handlers

import (
	"net/http"
	"time"

	"food-ordering-platform/internal/middleware"
	"food-ordering-platform/internal/services"

	"github.com/gorilla/sessions"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authService *services.AuthService
	store       sessions.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.storeSession(w, r, resp)
	respondJSON(w, http.StatusCreated, resp.User)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		// Credential failures are always a 401, not the 403 the
		// sentinel would otherwise map to.
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
		return
	}

	h.storeSession(w, r, resp)
	respondJSON(w, http.StatusOK, resp.User)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err == nil {
		if sessionID, ok := session.Values["session_id"].(string); ok {
			h.authService.Logout(sessionID)
		}
		delete(session.Values, "session_id")
		session.Save(r, w)
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not logged in"})
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) storeSession(w http.ResponseWriter, r *http.Request, resp *services.AuthResponse) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		session, _ = h.store.New(r, middleware.SessionName)
	}

	session.Values["session_id"] = resp.SessionID
	session.Options.MaxAge = int(time.Until(resp.ExpiresAt).Seconds())
	session.Save(r, w)
}
