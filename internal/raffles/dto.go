package raffles

import (
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/google/uuid"
)

// RaffleSummary pairs a raffle with its aggregate entry count.
type RaffleSummary struct {
	Raffle       models.MonthlyRaffle `json:"raffle"`
	TotalEntries int64                `json:"total_entries"`
}

// CustomerEntrySummary reports one customer's stake in the current raffle.
type CustomerEntrySummary struct {
	RaffleID *uuid.UUID `json:"raffle_id,omitempty"`
	Entries  int64      `json:"entries"`
}

// EntryList is a cursor page of raffle entries.
type EntryList struct {
	Entries    []models.RaffleEntry
	NextCursor *string
}

// OpenRaffleInput captures the fields needed to open a monthly raffle.
type OpenRaffleInput struct {
	Month int
	Year  int
	Prize string
}
