package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quizapi/internal/domain"
	"quizapi/internal/service"
	"quizapi/pkg/errors"
	"quizapi/pkg/logger"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// PrincipalContextKey is the key for the authenticated user in context
	PrincipalContextKey ContextKey = "principal"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// Auth creates an authentication middleware. It extracts the bearer token,
// resolves the principal through the auth service and rejects inactive
// accounts with 403.
func Auth(authService service.AuthService, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, appErr := extractBearerToken(r)
			if appErr != nil {
				writeErrorResponse(w, appErr, logger)
				return
			}

			ctx := r.Context()
			principal, err := authService.ResolvePrincipal(ctx, token)
			if err != nil {
				logger.WithError(err).Debug("Token validation failed")
				writeErrorResponse(w, errors.NewAuthenticationError("Invalid or expired token"), logger)
				return
			}

			if !principal.IsActive {
				writeErrorResponse(w, errors.NewAuthorizationError("Inactive user"), logger)
				return
			}

			ctx = context.WithValue(ctx, PrincipalContextKey, principal)
			r = r.WithContext(ctx)

			logger.WithField("user_id", principal.ID.String()).Debug("User authenticated successfully")

			next.ServeHTTP(w, r)
		})
	}
}

// PrincipalFromContext returns the authenticated user set by Auth
func PrincipalFromContext(ctx context.Context) (*domain.User, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(*domain.User)
	return principal, ok
}

// RequestID creates a middleware that adds a unique request ID to each request
func RequestID(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) (string, *errors.AppError) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.NewAuthenticationError("Authorization header is required")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.NewAuthenticationError("Invalid authorization header format")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", errors.NewAuthenticationError("Token is required")
	}

	return token, nil
}

// generateRequestID generates a simple request ID
func generateRequestID() string {
	return fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
}

// writeErrorResponse writes an error response to the client
func writeErrorResponse(w http.ResponseWriter, appErr *errors.AppError, logger *logger.Logger) {
	logger.WithError(appErr).Debug("Request rejected")

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

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Failed to encode error response")
	}
}
