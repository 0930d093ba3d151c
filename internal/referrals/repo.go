package referrals

import (
	"context"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a referrals repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, referral *models.Referral) (*models.Referral, error) {
	if err := r.db.WithContext(ctx).Create(referral).Error; err != nil {
		return nil, err
	}
	return referral, nil
}

func (r *repository) FindPendingByReferred(ctx context.Context, referredID uuid.UUID) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.WithContext(ctx).
		Where("referred_id = ? AND status = ?", referredID, enums.ReferralStatusPending).
		First(&referral).Error
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

func (r *repository) MarkQualified(ctx context.Context, referralID uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Referral{}).
		Where("id = ? AND status = ?", referralID, enums.ReferralStatusPending).
		Updates(map[string]any{
			"status":       enums.ReferralStatusQualified,
			"qualified_at": at,
			"reward_given": true,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) IncrementReferrerDiscount(ctx context.Context, referrerID uuid.UUID, percent int) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", referrerID).
		Update("discount_earned", gorm.Expr("discount_earned + ?", percent)).Error
}

func (r *repository) ListByReferrer(ctx context.Context, referrerID uuid.UUID, params pagination.Params) (*ReferralList, error) {
	limit := pagination.NormalizeLimit(params.Limit)
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("Referred").
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var referrals []models.Referral
	if err := query.Find(&referrals).Error; err != nil {
		return nil, err
	}

	list := &ReferralList{Referrals: referrals}
	if len(referrals) > limit {
		list.Referrals = referrals[:limit]
		last := list.Referrals[limit-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		list.NextCursor = &next
	}
	return list, nil
}
