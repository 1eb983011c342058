package service

import (
	"context"

	"mergington-api/internal/domain"
)

// CatalogService defines the operations over the activity catalog
type CatalogService interface {
	// ListActivities returns a copy of every activity keyed by name
	ListActivities(ctx context.Context) domain.Catalog

	// GetActivity returns a copy of a single activity
	GetActivity(ctx context.Context, activityName string) (domain.Activity, error)

	// Enroll appends participantID to the roster of activityName
	Enroll(ctx context.Context, activityName, participantID string) error

	// Unenroll removes participantID from the roster of activityName
	Unenroll(ctx context.Context, activityName, participantID string) error
}

// Services aggregates all service interfaces
type Services struct {
	Catalog CatalogService
}
