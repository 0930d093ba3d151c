package models

import (
	"time"

	"github.com/google/uuid"
)

// RaffleEntry is one unit of participation weight. Each qualification
// appends a new row with Entries = 1; totals are summed across rows.
type RaffleEntry struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID uuid.UUID      `gorm:"column:customer_id;type:uuid;not null;index"`
	RaffleID   uuid.UUID      `gorm:"column:raffle_id;type:uuid;not null;index"`
	Entries    int            `gorm:"column:entries;not null;default:1"`
	Customer   *Customer      `gorm:"foreignKey:CustomerID"`
	Raffle     *MonthlyRaffle `gorm:"foreignKey:RaffleID"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}
