package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

const activityRetentionDays = 90

// ActivityCleanupJobParams configure the activity retention job.
type ActivityCleanupJobParams struct {
	Logger     *logger.Logger
	Repository activityCleanupRepo
	Retention  int
}

type activityCleanupRepo interface {
	DeleteActivitiesOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// NewActivityCleanupJob prunes customer activity rows past retention.
func NewActivityCleanupJob(params ActivityCleanupJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	retention := params.Retention
	if retention <= 0 {
		retention = activityRetentionDays
	}
	return &activityCleanupJob{
		logg:      params.Logger,
		repo:      params.Repository,
		retention: retention,
		now:       time.Now,
	}, nil
}

type activityCleanupJob struct {
	logg      *logger.Logger
	repo      activityCleanupRepo
	retention int
	now       func() time.Time
}

func (j *activityCleanupJob) Name() string { return "activity-cleanup" }

func (j *activityCleanupJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-time.Duration(j.retention) * 24 * time.Hour)
	deleted, err := j.repo.DeleteActivitiesOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("activity cleanup: %w", err)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"cutoff":         cutoff,
		"retention_days": j.retention,
		"rows_deleted":   deleted,
	})
	j.logg.Info(logCtx, "activity cleanup complete")
	return nil
}
