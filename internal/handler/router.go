package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington-api/internal/container"
	"mergington-api/internal/middleware"
	"mergington-api/pkg/errors"
)

// NewRouter configures and returns the HTTP router
func NewRouter(c *container.Container) *chi.Mux {
	cfg := c.GetConfig()
	log := c.GetLogger()

	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.AllowedOrigins), log))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	// Keep the interface nil when Redis is absent so limiting is disabled
	var counter middleware.WindowCounter
	keyFunc := func(ipHash string) string { return ipHash }
	if redisClient := c.GetRedisClient(); redisClient != nil {
		counter = redisClient
		keyFunc = redisClient.KeyBuilder.KeySignupRateLimit
	}
	rateLimit := middleware.RateLimit(counter, middleware.RateLimitConfig{
		Limit:   cfg.SignupRateLimit,
		Window:  cfg.SignupRateWindow,
		KeyFunc: keyFunc,
	}, log)

	healthHandler := NewHealthHandler(c)
	activityHandler := NewActivityHandler(c.GetCatalogService(), log)

	r.Get("/health", healthHandler.Check)
	r.Handle("/metrics", promhttp.Handler())

	activityHandler.RegisterRoutes(r, rateLimit)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = errors.NewNotFoundError("Not Found", nil).Write(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = (&errors.AppError{
			Type:       errors.ErrorTypeValidation,
			Message:    "Method Not Allowed",
			StatusCode: http.StatusMethodNotAllowed,
		}).Write(w)
	})

	log.Info("Router configured successfully")
	return r
}
