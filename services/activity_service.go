package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blogem/rank-activity/metrics"
	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/repositories"
)

// ActivityService answers point-in-time reads of the activity log
type ActivityService interface {
	GetSnapshot(ctx context.Context) (*models.Snapshot, error)
	RecentSnapshot(ctx context.Context, limit int) (*models.Snapshot, error)
}

// activityService implements ActivityService interface
type activityService struct {
	logRepo repositories.ActivityLogRepository
	now     clock
}

// NewActivityService creates a new activity service
func NewActivityService(logRepo repositories.ActivityLogRepository) ActivityService {
	return &activityService{
		logRepo: logRepo,
		now:     time.Now,
	}
}

// GetSnapshot returns the full log, newest first. On an empty log
// lastModified is the time of the request.
func (s *activityService) GetSnapshot(ctx context.Context) (*models.Snapshot, error) {
	start := time.Now()
	defer func() {
		metrics.SnapshotDuration.WithLabelValues("snapshot").Observe(time.Since(start).Seconds())
	}()

	entries, err := s.logRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity logs: %w", err)
	}

	return models.NewSnapshot(entries, s.now()), nil
}

// RecentSnapshot returns the newest entries for the dashboard's first render.
// An empty log leaves lastModified blank.
func (s *activityService) RecentSnapshot(ctx context.Context, limit int) (*models.Snapshot, error) {
	start := time.Now()
	defer func() {
		metrics.SnapshotDuration.WithLabelValues("dashboard").Observe(time.Since(start).Seconds())
	}()

	entries, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent activity: %w", err)
	}

	snapshot := models.NewSnapshot(entries, s.now())
	if snapshot.IsEmpty() {
		snapshot.LastModified = ""
	}
	return snapshot, nil
}
