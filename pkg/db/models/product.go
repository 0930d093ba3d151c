package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents a catalog listing.
type Product struct {
	ID                  uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU                 string         `gorm:"column:sku;not null;uniqueIndex"`
	Title               string         `gorm:"column:title;not null"`
	Description         *string        `gorm:"column:description"`
	CategoryID          *uuid.UUID     `gorm:"column:category_id;type:uuid"`
	PriceCents          int64          `gorm:"column:price_cents;not null"`
	CompareAtPriceCents *int64         `gorm:"column:compare_at_price_cents"`
	Tags                pq.StringArray `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	Images              pq.StringArray `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	IsActive            bool           `gorm:"column:is_active;not null;default:true"`
	IsFeatured          bool           `gorm:"column:is_featured;not null;default:false"`
	Category            *Category      `gorm:"foreignKey:CategoryID"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
