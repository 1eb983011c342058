package service

import (
	"context"
	"errors"
	"sync"

	"mergington-api/internal/domain"
	"mergington-api/internal/observability"
	"mergington-api/pkg/logger"
)

// catalogService owns the in-memory activity catalog. A single RWMutex
// guards every roster so each check-then-mutate runs atomically.
type catalogService struct {
	mu         sync.RWMutex
	activities domain.Catalog
	logger     *logger.Logger
}

// NewCatalogService creates a catalog service over a copy of seed
func NewCatalogService(seed domain.Catalog, logger *logger.Logger) CatalogService {
	s := &catalogService{
		activities: seed.Clone(),
		logger:     logger,
	}

	for name, activity := range s.activities {
		observability.RecordRosterSize(name, len(activity.Participants), activity.MaxParticipants)
	}

	logger.WithField("activities", len(s.activities)).Info("Activity catalog initialized")
	return s
}

// ListActivities returns a deep copy of the catalog
func (s *catalogService) ListActivities(ctx context.Context) domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activities.Clone()
}

// GetActivity returns a copy of one activity
func (s *catalogService) GetActivity(ctx context.Context, activityName string) (domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Enroll signs participantID up for activityName.
// Capacity is advertised but not enforced.
func (s *catalogService) Enroll(ctx context.Context, activityName, participantID string) error {
	return s.mutate(observability.OperationEnroll, activityName, participantID, (*domain.Activity).AddParticipant)
}

// Unenroll removes participantID from activityName
func (s *catalogService) Unenroll(ctx context.Context, activityName, participantID string) error {
	return s.mutate(observability.OperationUnenroll, activityName, participantID, (*domain.Activity).RemoveParticipant)
}

// mutate applies change to one roster under the write lock. The roster is
// only written back when change succeeds.
func (s *catalogService) mutate(operation, activityName, participantID string, change func(*domain.Activity, string) error) error {
	log := s.logger.WithFields(map[string]interface{}{
		"operation": operation,
		"activity":  activityName,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		observability.RecordRosterOperation(operation, observability.ResultNotFound)
		log.Info("Roster change rejected: activity not found")
		return domain.ErrActivityNotFound
	}

	if err := change(&activity, participantID); err != nil {
		observability.RecordRosterOperation(operation, resultFor(err))
		log.WithError(err).Info("Roster change rejected")
		return err
	}

	s.activities[activityName] = activity
	observability.RecordRosterOperation(operation, observability.ResultSuccess)
	observability.RecordRosterSize(activityName, len(activity.Participants), activity.MaxParticipants)

	log.WithField("participants", len(activity.Participants)).Info("Roster updated")
	return nil
}

// resultFor maps a roster error to its metric label
func resultFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return observability.ResultAlreadyEnrolled
	case errors.Is(err, domain.ErrNotEnrolled):
		return observability.ResultNotEnrolled
	default:
		return observability.ResultNotFound
	}
}
