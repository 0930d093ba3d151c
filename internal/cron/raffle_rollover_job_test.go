package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

type fakeRafflesRepo struct {
	lastMonth int
	lastYear  int
	closed    int64
	err       error
	called    int
}

func (f *fakeRafflesRepo) DeactivateEndedBefore(ctx context.Context, month, year int) (int64, error) {
	f.called++
	f.lastMonth = month
	f.lastYear = year
	if f.err != nil {
		return 0, f.err
	}
	return f.closed, nil
}

func TestRaffleRolloverJobClosesPastRaffles(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRafflesRepo{closed: 3}
	job := newRaffleRolloverJob(t, repo)
	job.now = func() time.Time { return now }

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if repo.called != 1 {
		t.Fatalf("expected repo called once, got %d", repo.called)
	}
	if repo.lastMonth != 2 || repo.lastYear != 2026 {
		t.Fatalf("expected cutoff period 2/2026, got %d/%d", repo.lastMonth, repo.lastYear)
	}
}

func TestRaffleRolloverJobPropagatesErrors(t *testing.T) {
	repo := &fakeRafflesRepo{err: errors.New("boom")}
	job := newRaffleRolloverJob(t, repo)

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func newRaffleRolloverJob(t *testing.T, repo *fakeRafflesRepo) *raffleRolloverJob {
	t.Helper()
	jobIface, err := NewRaffleRolloverJob(RaffleRolloverJobParams{
		Logger:     logger.New(logger.Options{ServiceName: "test"}),
		Repository: repo,
	})
	if err != nil {
		t.Fatalf("NewRaffleRolloverJob: %v", err)
	}
	job, ok := jobIface.(*raffleRolloverJob)
	if !ok {
		t.Fatalf("expected raffleRolloverJob, got %T", jobIface)
	}
	return job
}
