package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/fulltechhq/fulltech-backend/internal/customers"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const maxDiscountPercent = 100

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service records purchases and drives the referral reward pipeline.
type Service interface {
	Record(ctx context.Context, input RecordInput) (*RecordResult, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*PurchaseList, error)
}

// ServiceParams collect the dependencies for NewService.
type ServiceParams struct {
	Repo       Repository
	Referrals  ReferralQualifier
	Raffles    RaffleGranter
	Activities customers.ActivityRecorder
	Tx         txRunner
}

type service struct {
	repo       Repository
	referrals  ReferralQualifier
	raffles    RaffleGranter
	activities customers.ActivityRecorder
	tx         txRunner
	now        func() time.Time
}

// NewService builds a purchases service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("purchases repository required")
	}
	if params.Referrals == nil {
		return nil, fmt.Errorf("referral qualifier required")
	}
	if params.Raffles == nil {
		return nil, fmt.Errorf("raffle granter required")
	}
	if params.Activities == nil {
		return nil, fmt.Errorf("activity recorder required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:       params.Repo,
		referrals:  params.Referrals,
		raffles:    params.Raffles,
		activities: params.Activities,
		tx:         params.Tx,
		now:        time.Now,
	}, nil
}

// Record persists the purchase and, in the same transaction, qualifies the
// buyer's pending referral and grants the referrer a raffle entry. The
// referral steps are no-ops for customers who were not referred or whose
// referral is already qualified.
func (s *service) Record(ctx context.Context, input RecordInput) (*RecordResult, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if input.TotalPriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "total price cannot be negative")
	}
	if input.DiscountApplied < 0 || input.DiscountApplied > maxDiscountPercent {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount must be between 0 and 100")
	}

	now := s.now().UTC()
	result := &RecordResult{}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		product, err := repo.FindProduct(ctx, input.ProductID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if !product.IsActive {
			return pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
		}

		// The purchase row and the qualification share one clock read so
		// qualified_at can never precede the purchase's created_at.
		purchase := &models.CustomerPurchase{
			CustomerID:      input.CustomerID,
			ProductID:       product.ID,
			Quantity:        input.Quantity,
			UnitPriceCents:  unitPriceCents(input.TotalPriceCents, input.Quantity),
			TotalPriceCents: input.TotalPriceCents,
			DiscountApplied: input.DiscountApplied,
			Status:          enums.PurchaseStatusCompleted,
			CreatedAt:       now,
		}
		if _, err := repo.Create(ctx, purchase); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create purchase")
		}

		if err := s.activities.Record(ctx, tx, input.CustomerID, enums.ActivityTypePurchase, map[string]any{
			"purchase_id":       purchase.ID.String(),
			"product_id":        product.ID.String(),
			"quantity":          input.Quantity,
			"total_price_cents": input.TotalPriceCents,
		}); err != nil {
			return err
		}

		outcome, err := s.referrals.Qualify(ctx, tx, input.CustomerID, now)
		if err != nil {
			return err
		}
		if outcome.Qualified {
			result.ReferralQualified = true
			granted, err := s.raffles.GrantEntry(ctx, tx, outcome.ReferrerID, now)
			if err != nil {
				return err
			}
			result.RaffleEntry = granted
		}

		result.Purchase = *purchase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*PurchaseList, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	list, err := s.repo.ListByCustomer(ctx, customerID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list purchases")
	}
	return list, nil
}

// unitPriceCents derives the per-item price from the reported total, rounded
// half up to the nearest cent.
func unitPriceCents(totalCents int64, quantity int) int64 {
	return decimal.NewFromInt(totalCents).
		Div(decimal.NewFromInt(int64(quantity))).
		Round(0).
		IntPart()
}
