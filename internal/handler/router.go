package handler

import (
	"time"

	"quizapi/internal/config"
	"quizapi/internal/middleware"
	"quizapi/internal/service"
	"quizapi/pkg/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter configures and returns the HTTP router. db and cache drive the
// health endpoint and may be nil in tests.
func NewRouter(cfg *config.Config, services *service.Services, db, cache HealthChecker, log *logger.Logger) *chi.Mux {
	r := chi.NewRouter()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.AllowedOrigins

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.Metrics())

	authHandler := NewAuthHandler(services.Auth, log)
	userHandler := NewUserHandler(services.Auth, log)
	quizHandler := NewQuizHandler(services.Quiz, log)
	questionHandler := NewQuestionHandler(services.Question, log)
	healthHandler := NewHealthHandler(db, cache, log)

	r.Get("/health", healthHandler.Check)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/google", authHandler.GoogleLogin)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth, log))

			r.Get("/me", userHandler.Me)
			r.Get("/{id}", userHandler.Get)
		})

		r.Route("/quizzes", func(r chi.Router) {
			// Reads are public; mutations require a principal
			r.Get("/", quizHandler.List)
			r.Get("/{id}", quizHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth, log))

				r.Post("/", quizHandler.Create)
				r.Patch("/{id}", quizHandler.Update)
				r.Delete("/{id}", quizHandler.Delete)
			})
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.List)
			r.Post("/", questionHandler.Create)
			r.Get("/{id}", questionHandler.Get)
			r.Put("/{id}", questionHandler.Update)
			r.Delete("/{id}", questionHandler.Delete)
		})
	})

	return r
}
