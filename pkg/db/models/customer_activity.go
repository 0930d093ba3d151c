package models

import (
	"time"

	dbtypes "github.com/fulltechhq/fulltech-backend/pkg/db/types"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/google/uuid"
)

// CustomerActivity is one row in a customer's activity feed.
type CustomerActivity struct {
	ID         uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID uuid.UUID          `gorm:"column:customer_id;type:uuid;not null;index"`
	Type       enums.ActivityType `gorm:"column:type;type:text;not null"`
	Detail     dbtypes.JSONMap    `gorm:"column:detail;type:jsonb;not null;default:'{}'"`
	Customer   *Customer          `gorm:"foreignKey:CustomerID"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
}
