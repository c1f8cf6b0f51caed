package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/openlot/leadhub/internal/adapter/api/handler"
	"github.com/openlot/leadhub/internal/adapter/api/middleware"
	"github.com/openlot/leadhub/internal/adapter/metrics"
	"github.com/openlot/leadhub/internal/pkg/config"
	"github.com/openlot/leadhub/internal/usecase"
)

// NewRouter creates and configures the main HTTP router for the lead API.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.APIMetrics,
	rateLimiter *middleware.RateLimiter,
	authUC usecase.AuthUseCase,
	leadUC usecase.LeadUseCase,
	emailUC usecase.EmailUseCase,
	analyticsUC usecase.AnalyticsUseCase,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimiter.Handler)
	r.Use(middleware.Logging(logger, m))

	authHandler := handler.NewAuthHandler(authUC, logger, m)
	leadHandler := handler.NewLeadHandler(leadUC, logger, m)
	emailHandler := handler.NewEmailHandler(emailUC, logger, m)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC, logger)

	authMiddleware := middleware.Auth(cfg.JWTSecret, logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/process-email", emailHandler.ProcessEmail)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/auth/profile", authHandler.Profile)

			r.Get("/leads", leadHandler.List)
			r.Post("/leads", leadHandler.Create)
			r.Get("/leads/{id}", leadHandler.Get)
			r.Put("/leads/{id}", leadHandler.Update)
			r.Get("/leads/{id}/activities", leadHandler.ListActivities)
			r.Post("/leads/{id}/activities", leadHandler.AddActivity)

			r.Get("/analytics", analyticsHandler.Summary)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
