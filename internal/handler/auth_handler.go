package handler

import (
	"net/http"

	"quizapi/internal/domain"
	"quizapi/internal/metrics"
	"quizapi/internal/service"
	"quizapi/pkg/logger"
)

// AuthHandler serves registration and login endpoints
type AuthHandler struct {
	auth service.AuthService
	log  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var signup domain.PasswordSignup
	if appErr := decodeJSON(r, &signup); appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	user, err := h.auth.Register(r.Context(), signup)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	metrics.RegistrationsTotal.Inc()
	h.log.WithField("user_id", user.ID.String()).Info("User registered")
	respondJSON(w, http.StatusCreated, domain.NewUserResponse(user))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, h.log, err)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	respondJSON(w, http.StatusOK, domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// GoogleLogin handles POST /api/auth/google
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.GoogleLoginRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	token, err := h.auth.LoginWithGoogle(r.Context(), req.GoogleIDToken)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, h.log, err)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	respondJSON(w, http.StatusOK, domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
