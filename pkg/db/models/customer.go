package models

import (
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/google/uuid"
)

// Customer represents the canonical storefront identity.
//
// Exactly one of Email/Phone is set, matching the provider the customer
// registered with. ReferredBy is immutable after creation.
type Customer struct {
	ID             uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email          *string            `gorm:"column:email;uniqueIndex"`
	Phone          *string            `gorm:"column:phone;uniqueIndex"`
	PasswordHash   *string            `gorm:"column:password_hash"`
	Name           string             `gorm:"column:name;not null"`
	Provider       enums.AuthProvider `gorm:"column:provider;type:text;not null"`
	Role           enums.CustomerRole `gorm:"column:role;type:text;not null;default:customer"`
	ReferralCode   string             `gorm:"column:referral_code;not null;uniqueIndex"`
	ReferredBy     *uuid.UUID         `gorm:"column:referred_by;type:uuid"`
	DiscountEarned int                `gorm:"column:discount_earned;not null;default:0"`
	IsActive       bool               `gorm:"column:is_active;not null;default:true"`
	LastLoginAt    *time.Time         `gorm:"column:last_login_at"`
	Referrer       *Customer          `gorm:"foreignKey:ReferredBy"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
