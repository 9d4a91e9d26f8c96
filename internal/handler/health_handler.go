package handler

import (
	"context"
	"net/http"
	"time"

	"quizapi/pkg/logger"
)

// HealthChecker reports the liveness of a backing dependency
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler serves the health endpoint. Redis is optional and reported
// degraded rather than failing the check.
type HealthHandler struct {
	db    HealthChecker
	cache HealthChecker
	log   *logger.Logger
}

// NewHealthHandler creates a new health handler. cache may be nil.
func NewHealthHandler(db, cache HealthChecker, log *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, log: log}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := map[string]string{}

	if h.db != nil {
		if err := h.db.Health(ctx); err != nil {
			h.log.WithError(err).Error("Database health check failed")
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			checks["database"] = "up"
		}
	}

	if h.cache != nil {
		if err := h.cache.Health(ctx); err != nil {
			h.log.WithError(err).Warn("Redis health check failed")
			checks["redis"] = "down"
		} else {
			checks["redis"] = "up"
		}
	} else {
		checks["redis"] = "disabled"
	}

	body := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	respondJSON(w, status, body)
}
