package api

import (
	"encoding/json"
	"net/http"

	"guitar-storefront/internal/auth"
	"guitar-storefront/internal/logger"
	"guitar-storefront/internal/session"
	"guitar-storefront/internal/state"
)

// AuthHandler serves the mocked login/register/logout endpoints and drives
// the session's auth slice through its state machine.
type AuthHandler struct {
	svc      *auth.Service
	sessions *session.Registry
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(svc *auth.Service, sessions *session.Registry) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type authResponse struct {
	User  state.User `json:"user"`
	Token string     `json:"token"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	st := h.sessions.Store(w, r)
	st.LoginStart()

	user, token, err := h.svc.Login(r.Context(), req.Email)
	if err != nil {
		logger.Errorf("Login: %v", err)
		st.LoginFailure("Login failed. Please try again.")
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}
	st.LoginSuccess(user)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResponse{User: user, Token: token})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	st := h.sessions.Store(w, r)
	st.LoginStart()

	user, token, err := h.svc.Register(r.Context(), req.Email, req.FirstName, req.LastName)
	if err != nil {
		logger.Errorf("Register: %v", err)
		st.LoginFailure("Registration failed. Please try again.")
		http.Error(w, "registration failed", http.StatusUnauthorized)
		return
	}
	st.LoginSuccess(user)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(authResponse{User: user, Token: token})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Store(w, r)
	st.Logout()
	w.WriteHeader(http.StatusNoContent)
}
