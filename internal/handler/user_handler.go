package handler

import (
	"net/http"

	"quizapi/internal/domain"
	"quizapi/internal/middleware"
	"quizapi/internal/service"
	"quizapi/pkg/errors"
	"quizapi/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UserHandler serves user read endpoints
type UserHandler struct {
	auth service.AuthService
	log  *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(auth service.AuthService, log *logger.Logger) *UserHandler {
	return &UserHandler{auth: auth, log: log}
}

// Me handles GET /api/users/me, returning the authenticated principal
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.log, errors.NewAuthenticationError("Not authenticated"))
		return
	}
	respondJSON(w, http.StatusOK, domain.NewUserResponse(principal))
}

// Get handles GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, errors.NewValidationError("Invalid user id", nil))
		return
	}

	user, svcErr := h.auth.GetUser(r.Context(), id)
	if svcErr != nil {
		writeError(w, h.log, svcErr)
		return
	}
	respondJSON(w, http.StatusOK, domain.NewUserResponse(user))
}
