package models

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyRaffle scopes a prize drawing to a calendar month/year.
// A partial unique index keeps at most one active raffle per month.
type MonthlyRaffle struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Month     int       `gorm:"column:month;not null"`
	Year      int       `gorm:"column:year;not null"`
	Prize     string    `gorm:"column:prize;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
