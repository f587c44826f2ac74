package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/clipstream/backend/internal/logging"
	"github.com/clipstream/backend/internal/models"
)

// AuthHandler implements the session endpoints.
type AuthHandler struct {
	Sessions SessionStore
	Limiter  RateLimiter
}

// Login handles POST /api/v1/auth/login requests.
func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Sessions == nil {
		logger.Error("session store unavailable")
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "session service unavailable"})
		return
	}

	if !allowRequest(h.Limiter, r, "login") {
		respondJSON(ctx, w, http.StatusTooManyRequests, map[string]string{"error": "too many attempts, slow down"})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		logger.Warn("login missing credentials", "username", req.Username)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "username and password are required"})
		return
	}

	spanCtx, span := logging.StartSpan(ctx, "session.login")
	ok := h.Sessions.Login(spanCtx, req.Username, req.Password)
	span.End()

	if !ok {
		logger.Warn("login rejected", "username", req.Username)
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	user, _ := h.Sessions.CurrentUser()
	respondJSON(ctx, w, http.StatusOK, sessionResponse{User: user, Authenticated: true})
}

// Register handles POST /api/v1/auth/register requests.
func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Sessions == nil {
		logger.Error("session store unavailable")
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "session service unavailable"})
		return
	}

	if !allowRequest(h.Limiter, r, "register") {
		respondJSON(ctx, w, http.StatusTooManyRequests, map[string]string{"error": "too many attempts, slow down"})
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid register payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		logger.Warn("register missing fields", "username", req.Username)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "username, email, and password are required"})
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		logger.Warn("register invalid email", "email", req.Email, "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid email address"})
		return
	}

	if len(req.Password) < 8 {
		logger.Warn("register password too short", "username", req.Username)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "password must be at least 8 characters"})
		return
	}

	spanCtx, span := logging.StartSpan(ctx, "session.register")
	ok := h.Sessions.Register(spanCtx, req.Username, req.Email, req.Password)
	span.End()

	if !ok {
		logger.Warn("register username taken", "username", req.Username)
		respondJSON(ctx, w, http.StatusConflict, map[string]string{"error": "username already taken"})
		return
	}

	user, _ := h.Sessions.CurrentUser()
	respondJSON(ctx, w, http.StatusCreated, sessionResponse{User: user, Authenticated: true})
}

// Logout handles POST /api/v1/auth/logout requests.
func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if h.Sessions != nil {
		h.Sessions.Logout(r.Context())
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me requests.
func (h AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Sessions == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "session service unavailable"})
		return
	}

	user, ok := h.Sessions.CurrentUser()
	if !ok {
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, sessionResponse{User: user, Authenticated: true})
}

// UpdateProfile handles PATCH /api/v1/auth/profile requests.
func (h AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Sessions == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "session service unavailable"})
		return
	}

	if !h.Sessions.IsAuthenticated() {
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Warn("invalid profile payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	h.Sessions.UpdateProfile(ctx, update)

	user, _ := h.Sessions.CurrentUser()
	respondJSON(ctx, w, http.StatusOK, sessionResponse{User: user, Authenticated: true})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User          models.User `json:"user"`
	Authenticated bool        `json:"authenticated"`
}
