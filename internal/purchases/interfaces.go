package purchases

import (
	"context"
	"time"

	"github.com/fulltechhq/fulltech-backend/internal/referrals"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for purchases.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, purchase *models.CustomerPurchase) (*models.CustomerPurchase, error)
	FindProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*PurchaseList, error)
}

// ReferralQualifier flips the buyer's pending referral inside the purchase
// transaction.
type ReferralQualifier interface {
	Qualify(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (*referrals.QualificationOutcome, error)
}

// RaffleGranter awards a raffle entry inside the purchase transaction.
type RaffleGranter interface {
	GrantEntry(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, now time.Time) (bool, error)
}
