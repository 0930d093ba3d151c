package referrals

import (
	"context"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for referral rows.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, referral *models.Referral) (*models.Referral, error)
	FindPendingByReferred(ctx context.Context, referredID uuid.UUID) (*models.Referral, error)
	MarkQualified(ctx context.Context, referralID uuid.UUID, at time.Time) (bool, error)
	IncrementReferrerDiscount(ctx context.Context, referrerID uuid.UUID, percent int) error
	ListByReferrer(ctx context.Context, referrerID uuid.UUID, params pagination.Params) (*ReferralList, error)
}
