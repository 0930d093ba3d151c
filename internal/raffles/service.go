package raffles

import (
	"context"
	"fmt"
	"time"

	"github.com/fulltechhq/fulltech-backend/internal/customers"
	pkgdb "github.com/fulltechhq/fulltech-backend/pkg/db"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns monthly raffles and the entries granted on referral rewards.
type Service interface {
	Current(ctx context.Context, now time.Time) (*RaffleSummary, error)
	GrantEntry(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (bool, error)
	CustomerEntries(ctx context.Context, customerID uuid.UUID, now time.Time) (*CustomerEntrySummary, error)
	Open(ctx context.Context, input OpenRaffleInput) (*models.MonthlyRaffle, error)
	Close(ctx context.Context, raffleID uuid.UUID) error
	Entries(ctx context.Context, raffleID uuid.UUID, params pagination.Params) (*EntryList, error)
}

// ServiceParams collect the dependencies for NewService.
type ServiceParams struct {
	Repo       Repository
	Activities customers.ActivityRecorder
}

type service struct {
	repo       Repository
	activities customers.ActivityRecorder
}

// NewService builds a raffles service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("raffles repository required")
	}
	if params.Activities == nil {
		return nil, fmt.Errorf("activity recorder required")
	}
	return &service{
		repo:       params.Repo,
		activities: params.Activities,
	}, nil
}

// Current returns the active raffle for now's month/year, or nil when none
// is open. Overlapping actives resolve to the most recently created row.
func (s *service) Current(ctx context.Context, now time.Time) (*RaffleSummary, error) {
	raffle, err := s.findCurrent(ctx, s.repo, now)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, nil
	}
	total, err := s.repo.SumEntries(ctx, raffle.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum raffle entries")
	}
	return &RaffleSummary{Raffle: *raffle, TotalEntries: total}, nil
}

// GrantEntry inserts a single-unit entry for the customer into the current
// raffle inside the caller's transaction. No active raffle is not an error;
// the grant is simply skipped.
func (s *service) GrantEntry(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (bool, error) {
	if customerID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	repo := s.repo.WithTx(tx)
	raffle, err := s.findCurrent(ctx, repo, now)
	if err != nil {
		return false, err
	}
	if raffle == nil {
		return false, nil
	}

	entry := &models.RaffleEntry{
		CustomerID: customerID,
		RaffleID:   raffle.ID,
		Entries:    1,
	}
	if err := repo.CreateEntry(ctx, entry); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create raffle entry")
	}

	if err := s.activities.Record(ctx, tx, customerID, enums.ActivityTypeRaffleEntry, map[string]any{
		"raffle_id": raffle.ID.String(),
		"month":     raffle.Month,
		"year":      raffle.Year,
	}); err != nil {
		return false, err
	}

	return true, nil
}

func (s *service) CustomerEntries(ctx context.Context, customerID uuid.UUID, now time.Time) (*CustomerEntrySummary, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	raffle, err := s.findCurrent(ctx, s.repo, now)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return &CustomerEntrySummary{}, nil
	}
	total, err := s.repo.SumEntriesForCustomer(ctx, raffle.ID, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum customer entries")
	}
	raffleID := raffle.ID
	return &CustomerEntrySummary{RaffleID: &raffleID, Entries: total}, nil
}

func (s *service) Open(ctx context.Context, input OpenRaffleInput) (*models.MonthlyRaffle, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "month must be between 1 and 12")
	}
	if input.Year < 2020 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "year out of range")
	}
	if input.Prize == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prize required")
	}

	raffle := &models.MonthlyRaffle{
		Month:    input.Month,
		Year:     input.Year,
		Prize:    input.Prize,
		IsActive: true,
	}
	if _, err := s.repo.Create(ctx, raffle); err != nil {
		if pkgdb.IsUniqueViolation(err, "ux_monthly_raffles_active_period") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an active raffle already exists for that month")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create raffle")
	}
	return raffle, nil
}

func (s *service) Close(ctx context.Context, raffleID uuid.UUID) error {
	if raffleID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "raffle id required")
	}
	closed, err := s.repo.Deactivate(ctx, raffleID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close raffle")
	}
	if !closed {
		if _, findErr := s.repo.FindByID(ctx, raffleID); findErr == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "raffle not found")
		}
		return pkgerrors.New(pkgerrors.CodeStateConflict, "raffle is already closed")
	}
	return nil
}

func (s *service) Entries(ctx context.Context, raffleID uuid.UUID, params pagination.Params) (*EntryList, error) {
	if raffleID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "raffle id required")
	}
	if _, err := s.repo.FindByID(ctx, raffleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "raffle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load raffle")
	}
	list, err := s.repo.ListEntries(ctx, raffleID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list raffle entries")
	}
	return list, nil
}

func (s *service) findCurrent(ctx context.Context, repo Repository, now time.Time) (*models.MonthlyRaffle, error) {
	utc := now.UTC()
	raffle, err := repo.FindActiveByPeriod(ctx, int(utc.Month()), utc.Year())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load current raffle")
	}
	return raffle, nil
}
