package handler

import (
	"net/http"
	"strconv"

	"quizapi/internal/domain"
	"quizapi/internal/middleware"
	"quizapi/internal/service"
	"quizapi/pkg/errors"
	"quizapi/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// QuizHandler serves quiz CRUD endpoints
type QuizHandler struct {
	quizzes service.QuizService
	log     *logger.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizzes service.QuizService, log *logger.Logger) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, log: log}
}

// Create handles POST /api/quizzes
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.log, errors.NewAuthenticationError("Not authenticated"))
		return
	}

	var in domain.QuizCreate
	if appErr := decodeJSON(r, &in); appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	quiz, err := h.quizzes.Create(r.Context(), &in, principal.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.WithFields(map[string]interface{}{
		"quiz_id":  quiz.ID,
		"owner_id": principal.ID.String(),
	}).Info("Quiz created")
	respondJSON(w, http.StatusCreated, domain.NewQuizResponse(quiz))
}

// List handles GET /api/quizzes with skip/limit query parameters
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	skip := parseIntQuery(r, "skip", 0)
	limit := parseIntQuery(r, "limit", 0)

	quizzes, err := h.quizzes.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	responses := make([]*domain.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		responses = append(responses, domain.NewQuizResponse(&quizzes[i]))
	}
	respondJSON(w, http.StatusOK, responses)
}

// Get handles GET /api/quizzes/{id}
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, appErr := quizIDParam(r)
	if appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	quiz, err := h.quizzes.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.NewQuizResponse(quiz))
}

// Update handles PATCH /api/quizzes/{id}
func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.log, errors.NewAuthenticationError("Not authenticated"))
		return
	}

	id, appErr := quizIDParam(r)
	if appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	var in domain.QuizUpdate
	if decErr := decodeJSON(r, &in); decErr != nil {
		writeError(w, h.log, decErr)
		return
	}

	quiz, err := h.quizzes.Update(r.Context(), id, &in, principal.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.NewQuizResponse(quiz))
}

// Delete handles DELETE /api/quizzes/{id}
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.log, errors.NewAuthenticationError("Not authenticated"))
		return
	}

	id, appErr := quizIDParam(r)
	if appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	if err := h.quizzes.Delete(r.Context(), id, principal.ID); err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.WithField("quiz_id", id).Info("Quiz deleted")
	w.WriteHeader(http.StatusNoContent)
}

func quizIDParam(r *http.Request) (int64, *errors.AppError) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.NewValidationError("Invalid quiz id", nil)
	}
	return id, nil
}

// parseIntQuery reads an integer query parameter, falling back to def when
// absent or malformed
func parseIntQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
