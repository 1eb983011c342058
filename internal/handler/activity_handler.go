package handler

import (
	"crypto/md5"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"mergington-api/internal/domain"
	"mergington-api/internal/middleware"
	"mergington-api/internal/service"
	"mergington-api/pkg/errors"
	"mergington-api/pkg/logger"
)

// ActivityHandler serves the activity catalog and roster changes
type ActivityHandler struct {
	catalog service.CatalogService
	logger  *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(catalog service.CatalogService, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers activity routes. Roster changes go through
// rosterMiddleware so they can be rate limited separately from reads.
func (h *ActivityHandler) RegisterRoutes(r chi.Router, rosterMiddleware ...func(http.Handler) http.Handler) {
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Get("/{activityName}", h.GetActivity)

		r.Group(func(r chi.Router) {
			r.Use(rosterMiddleware...)
			r.Post("/{activityName}/signup", h.Signup)
			r.Delete("/{activityName}/unregister", h.Unregister)
		})
	})
}

// ListActivities handles GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.catalog.ListActivities(r.Context())

	body, err := json.Marshal(activities)
	if err != nil {
		h.respondError(w, r, errors.NewInternalError("Failed to encode activities", err))
		return
	}

	etag := fmt.Sprintf(`"%x"`, md5.Sum(body))
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// GetActivity handles GET /activities/{activityName}
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.catalog.GetActivity(r.Context(), activityName(r))
	if err != nil {
		h.respondError(w, r, toAppError(err))
		return
	}

	h.respondJSON(w, http.StatusOK, activity)
}

// Signup handles POST /activities/{activityName}/signup?email=
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email, ok := participantEmail(r)
	if !ok {
		h.respondError(w, r, errors.NewValidationError("email query parameter is required"))
		return
	}

	if err := h.catalog.Enroll(r.Context(), name, email); err != nil {
		h.respondError(w, r, toAppError(err))
		return
	}

	h.respondJSON(w, http.StatusOK, domain.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister handles DELETE /activities/{activityName}/unregister?email=
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email, ok := participantEmail(r)
	if !ok {
		h.respondError(w, r, errors.NewValidationError("email query parameter is required"))
		return
	}

	if err := h.catalog.Unenroll(r.Context(), name, email); err != nil {
		h.respondError(w, r, toAppError(err))
		return
	}

	h.respondJSON(w, http.StatusOK, domain.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// activityName returns the decoded activity path segment. chi matches on
// r.URL.Path, which is already decoded, unless RawPath is set.
func activityName(r *http.Request) string {
	raw := chi.URLParam(r, "activityName")
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// participantEmail reads the email from the query string, then the form body.
// A present but empty value is accepted; the value is passed on as-is.
func participantEmail(r *http.Request) (string, bool) {
	query := r.URL.Query()
	if query.Has("email") {
		return query.Get("email"), true
	}
	if err := r.ParseForm(); err == nil && r.PostForm.Has("email") {
		return r.PostForm.Get("email"), true
	}
	return "", false
}

// toAppError maps catalog errors onto HTTP errors
func toAppError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, domain.ErrActivityNotFound):
		return errors.NewNotFoundError(domain.ErrActivityNotFound.Error(), err)
	case stderrors.Is(err, domain.ErrAlreadyEnrolled):
		return errors.NewConflictError(domain.ErrAlreadyEnrolled.Error(), err)
	case stderrors.Is(err, domain.ErrNotEnrolled):
		return errors.NewConflictError(domain.ErrNotEnrolled.Error(), err)
	default:
		return errors.NewInternalError("Internal Server Error", err)
	}
}

func (h *ActivityHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Error("Failed to encode response")
	}
}

func (h *ActivityHandler) respondError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError) {
	log := h.logger.WithFields(map[string]interface{}{
		"request_id": middleware.GetRequestID(r.Context()),
		"error_type": appErr.Type,
		"status":     appErr.StatusCode,
	})
	if appErr.StatusCode >= http.StatusInternalServerError {
		log.WithError(appErr).Error("Request failed")
	} else {
		log.Debug(appErr.Message)
	}

	if err := appErr.Write(w); err != nil {
		h.logger.WithError(err).Error("Failed to encode error response")
	}
}
