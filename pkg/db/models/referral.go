package models

import (
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/google/uuid"
)

// Referral links a referrer to the customer they invited.
//
// One row per (referrer, referred) pair; the pair is unique so a
// referred customer can only ever qualify once for a given referrer.
type Referral struct {
	ID          uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ReferrerID  uuid.UUID            `gorm:"column:referrer_id;type:uuid;not null;uniqueIndex:ux_referrals_pair"`
	ReferredID  uuid.UUID            `gorm:"column:referred_id;type:uuid;not null;uniqueIndex:ux_referrals_pair"`
	Status      enums.ReferralStatus `gorm:"column:status;type:text;not null;default:pending"`
	QualifiedAt *time.Time           `gorm:"column:qualified_at"`
	RewardGiven bool                 `gorm:"column:reward_given;not null;default:false"`
	Referrer    *Customer            `gorm:"foreignKey:ReferrerID"`
	Referred    *Customer            `gorm:"foreignKey:ReferredID"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
