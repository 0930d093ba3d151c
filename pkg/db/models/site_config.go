package models

import (
	"time"

	dbtypes "github.com/fulltechhq/fulltech-backend/pkg/db/types"
	"github.com/google/uuid"
)

// SiteConfig is a keyed JSONB blob of storefront configuration.
type SiteConfig struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key       string          `gorm:"column:key;not null;uniqueIndex"`
	Value     dbtypes.JSONMap `gorm:"column:value;type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
