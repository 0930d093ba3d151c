package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

// RaffleRolloverJobParams configure the raffle rollover job.
type RaffleRolloverJobParams struct {
	Logger     *logger.Logger
	Repository raffleRolloverRepo
}

type raffleRolloverRepo interface {
	DeactivateEndedBefore(ctx context.Context, month, year int) (int64, error)
}

// NewRaffleRolloverJob closes raffles whose month has passed.
func NewRaffleRolloverJob(params RaffleRolloverJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("raffles repository required")
	}
	return &raffleRolloverJob{
		logg: params.Logger,
		repo: params.Repository,
		now:  time.Now,
	}, nil
}

type raffleRolloverJob struct {
	logg *logger.Logger
	repo raffleRolloverRepo
	now  func() time.Time
}

func (j *raffleRolloverJob) Name() string { return "raffle-rollover" }

func (j *raffleRolloverJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	closed, err := j.repo.DeactivateEndedBefore(ctx, int(now.Month()), now.Year())
	if err != nil {
		return fmt.Errorf("raffle rollover: %w", err)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"month":          int(now.Month()),
		"year":           now.Year(),
		"raffles_closed": closed,
	})
	j.logg.Info(logCtx, "raffle rollover complete")
	return nil
}
