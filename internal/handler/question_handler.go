package handler

import (
	"net/http"

	"quizapi/internal/domain"
	"quizapi/internal/service"
	"quizapi/pkg/errors"
	"quizapi/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// QuestionHandler serves question CRUD endpoints
type QuestionHandler struct {
	questions service.QuestionService
	log       *logger.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions service.QuestionService, log *logger.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, log: log}
}

// Create handles POST /api/questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.QuestionCreate
	if appErr := decodeJSON(r, &in); appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	question, err := h.questions.Create(r.Context(), &in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.WithField("question_id", question.ID.String()).Info("Question created")
	respondJSON(w, http.StatusCreated, domain.NewQuestionResponse(question))
}

// List handles GET /api/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	responses := make([]*domain.QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, domain.NewQuestionResponse(&questions[i]))
	}
	respondJSON(w, http.StatusOK, responses)
}

// Get handles GET /api/questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, appErr := questionIDParam(r)
	if appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	question, err := h.questions.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.NewQuestionResponse(question))
}

// Update handles PUT /api/questions/{id}
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, appErr := questionIDParam(r)
	if appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	var in domain.QuestionUpdate
	if decErr := decodeJSON(r, &in); decErr != nil {
		writeError(w, h.log, decErr)
		return
	}

	question, err := h.questions.Update(r.Context(), id, &in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.NewQuestionResponse(question))
}

// Delete handles DELETE /api/questions/{id}
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, appErr := questionIDParam(r)
	if appErr != nil {
		writeError(w, h.log, appErr)
		return
	}

	if err := h.questions.Delete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func questionIDParam(r *http.Request) (uuid.UUID, *errors.AppError) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.NewValidationError("Invalid question id", nil)
	}
	return id, nil
}
