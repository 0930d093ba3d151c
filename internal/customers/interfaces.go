package customers

import (
	"context"
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for customer accounts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	FindByReferralCode(ctx context.Context, code string) (*models.Customer, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	ListActivities(ctx context.Context, customerID uuid.UUID, params pagination.Params) (*ActivityList, error)
	DeleteActivitiesOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ReferralCreator records the pending referral produced at registration.
type ReferralCreator interface {
	CreatePending(ctx context.Context, tx *gorm.DB, referrerID, referredID uuid.UUID) error
}
