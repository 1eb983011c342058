package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mergington-api/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Version    string            `json:"version"`
	Service    string            `json:"service"`
	Activities int               `json:"activities"`
	Checks     map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health. Redis is only checked when configured.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	response := HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Version:    "1.0.0",
		Service:    "mergington-api",
		Activities: len(h.container.GetCatalogService().ListActivities(r.Context())),
	}
	status := http.StatusOK

	if redisClient := h.container.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		response.Checks = map[string]string{"redis": "ok"}
		if err := redisClient.Health(ctx); err != nil {
			logger.WithError(err).Warn("Redis health check failed")
			response.Checks["redis"] = "unavailable"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Failed to encode health check response")
	}
}
