package models

import (
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/google/uuid"
)

// CustomerPurchase records a completed transaction. Rows are immutable
// once inserted.
type CustomerPurchase struct {
	ID               uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID       uuid.UUID            `gorm:"column:customer_id;type:uuid;not null;index"`
	ProductID        uuid.UUID            `gorm:"column:product_id;type:uuid;not null"`
	Quantity         int                  `gorm:"column:quantity;not null"`
	UnitPriceCents   int64                `gorm:"column:unit_price_cents;not null"`
	TotalPriceCents  int64                `gorm:"column:total_price_cents;not null"`
	DiscountApplied  int                  `gorm:"column:discount_applied;not null;default:0"`
	Status           enums.PurchaseStatus `gorm:"column:status;type:text;not null;default:completed"`
	Customer         *Customer            `gorm:"foreignKey:CustomerID"`
	Product          *Product             `gorm:"foreignKey:ProductID"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
}
