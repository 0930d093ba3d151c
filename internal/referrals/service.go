package referrals

import (
	"context"
	"fmt"
	"time"

	"github.com/fulltechhq/fulltech-backend/internal/customers"
	"github.com/fulltechhq/fulltech-backend/pkg/config"
	pkgdb "github.com/fulltechhq/fulltech-backend/pkg/db"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns the referral lifecycle from pending row to qualified reward.
type Service interface {
	CreatePending(ctx context.Context, tx *gorm.DB, referrerID, referredID uuid.UUID) error
	Qualify(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (*QualificationOutcome, error)
	ListForReferrer(ctx context.Context, referrerID uuid.UUID, params pagination.Params) (*ReferralList, error)
}

// ServiceParams collect the dependencies for NewService.
type ServiceParams struct {
	Repo       Repository
	Activities customers.ActivityRecorder
	Referral   config.ReferralConfig
}

type service struct {
	repo          Repository
	activities    customers.ActivityRecorder
	rewardPercent int
}

// NewService builds a referrals service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("referrals repository required")
	}
	if params.Activities == nil {
		return nil, fmt.Errorf("activity recorder required")
	}
	reward := params.Referral.RewardPercent
	if reward <= 0 {
		return nil, fmt.Errorf("reward percent must be positive")
	}
	return &service{
		repo:          params.Repo,
		activities:    params.Activities,
		rewardPercent: reward,
	}, nil
}

func (s *service) CreatePending(ctx context.Context, tx *gorm.DB, referrerID, referredID uuid.UUID) error {
	if referrerID == uuid.Nil || referredID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "referrer and referred ids required")
	}
	if referrerID == referredID {
		return pkgerrors.New(pkgerrors.CodeValidation, "customers cannot refer themselves")
	}

	referral := &models.Referral{
		ReferrerID: referrerID,
		ReferredID: referredID,
		Status:     enums.ReferralStatusPending,
	}
	if _, err := s.repo.WithTx(tx).Create(ctx, referral); err != nil {
		if pkgdb.IsUniqueViolation(err, "ux_referrals_pair") {
			return pkgerrors.New(pkgerrors.CodeConflict, "referral already recorded")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create referral")
	}
	return nil
}

// Qualify flips the purchasing customer's pending referral to qualified and
// credits the referrer. Safe to call on every purchase; once the guarded
// update finds no pending row the call is a no-op.
func (s *service) Qualify(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (*QualificationOutcome, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}

	repo := s.repo.WithTx(tx)

	referral, err := repo.FindPendingByReferred(ctx, customerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &QualificationOutcome{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pending referral")
	}

	flipped, err := repo.MarkQualified(ctx, referral.ID, now.UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "qualify referral")
	}
	if !flipped {
		return &QualificationOutcome{}, nil
	}

	if err := repo.IncrementReferrerDiscount(ctx, referral.ReferrerID, s.rewardPercent); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "credit referrer discount")
	}

	if err := s.activities.Record(ctx, tx, referral.ReferrerID, enums.ActivityTypeReferralQualified, map[string]any{
		"referral_id":      referral.ID.String(),
		"referred_id":      customerID.String(),
		"discount_percent": s.rewardPercent,
	}); err != nil {
		return nil, err
	}

	return &QualificationOutcome{
		Qualified:  true,
		ReferralID: referral.ID,
		ReferrerID: referral.ReferrerID,
	}, nil
}

func (s *service) ListForReferrer(ctx context.Context, referrerID uuid.UUID, params pagination.Params) (*ReferralList, error) {
	if referrerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	list, err := s.repo.ListByReferrer(ctx, referrerID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list referrals")
	}
	return list, nil
}
