package service

import (
	"context"

	"kig-backend/internal/domain"
	"kig-backend/internal/logger"
	"kig-backend/internal/metrics"
	"kig-backend/internal/repository"
)

// ActivityRecorder appends audit-trail entries after mutating operations.
// Recording is fire-and-forget: a failed append is logged and never rolls
// back or blocks the primary write, so the trail can have gaps when the
// store is unhealthy.
type ActivityRecorder struct {
	logs    repository.ActivityLogRepository
	metrics *metrics.Collector
}

func NewActivityRecorder(logs repository.ActivityLogRepository, collector *metrics.Collector) *ActivityRecorder {
	return &ActivityRecorder{logs: logs, metrics: collector}
}

// Record appends one entry. relatedID, before and after may be empty/nil.
func (r *ActivityRecorder) Record(ctx context.Context, activityType domain.ActivityType,
	description, userID, relatedID string, before, after domain.Snapshot) {

	entry := &domain.ActivityLog{
		Type:        activityType,
		Description: description,
		UserID:      userID,
		RelatedID:   relatedID,
		BeforeData:  before,
		AfterData:   after,
	}
	if err := r.logs.Append(ctx, entry); err != nil {
		logger.Error("Failed to append activity log", "type", activityType, "related_id", relatedID, "error", err)
		return
	}
	if r.metrics != nil {
		r.metrics.RecordActivityWrite()
	}
}

type activityService struct {
	logs repository.ActivityLogRepository
}

func NewActivityService(logs repository.ActivityLogRepository) ActivityService {
	return &activityService{logs: logs}
}

func (s *activityService) ListActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	return s.logs.List(ctx, limit)
}
