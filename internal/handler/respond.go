package handler

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"quizapi/internal/domain"
	"quizapi/pkg/errors"
	"quizapi/pkg/logger"
)

// respondJSON writes a JSON body with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError translates a service error into the HTTP error contract.
// Domain sentinels map to their status codes; anything unrecognized is a 500.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	appErr := translateError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Debug("Request rejected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	response := map[string]interface{}{
		"success": false,
		"error": map[string]interface{}{
			"type":      string(appErr.Type),
			"message":   appErr.Message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if appErr.Details != nil {
		response["error"].(map[string]interface{})["details"] = appErr.Details
	}

	if encErr := json.NewEncoder(w).Encode(response); encErr != nil {
		log.WithError(encErr).Error("Failed to encode error response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func translateError(err error) *errors.AppError {
	var appErr *errors.AppError
	switch {
	case stderrors.As(err, &appErr):
		return appErr
	case stderrors.Is(err, domain.ErrValidation):
		return errors.NewUnprocessableError(err.Error())
	case stderrors.Is(err, domain.ErrDuplicateEmail):
		return errors.NewConflictError("Email already registered")
	case stderrors.Is(err, domain.ErrInvalidCredentials):
		return errors.NewAuthenticationError("Incorrect email or password")
	case stderrors.Is(err, domain.ErrInvalidToken):
		return errors.NewAuthenticationError("Invalid or expired token")
	case stderrors.Is(err, domain.ErrPermissionDenied):
		return errors.NewAuthorizationError("Not authorized to modify this resource")
	case stderrors.Is(err, domain.ErrQuizNotFound):
		return errors.NewNotFoundError("Quiz not found")
	case stderrors.Is(err, domain.ErrQuestionNotFound):
		return errors.NewNotFoundError("Question not found")
	case stderrors.Is(err, domain.ErrUserNotFound):
		return errors.NewNotFoundError("User not found")
	default:
		return errors.NewInternalError("Internal server error", err)
	}
}

// decodeJSON decodes a request body, mapping malformed JSON to a 400
func decodeJSON(r *http.Request, dst interface{}) *errors.AppError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewValidationError("Invalid request body", nil)
	}
	return nil
}
