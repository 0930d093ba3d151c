package raffles

import (
	"context"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for raffles and their entries.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, raffle *models.MonthlyRaffle) (*models.MonthlyRaffle, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.MonthlyRaffle, error)
	FindActiveByPeriod(ctx context.Context, month, year int) (*models.MonthlyRaffle, error)
	Deactivate(ctx context.Context, id uuid.UUID) (bool, error)
	DeactivateEndedBefore(ctx context.Context, month, year int) (int64, error)
	CreateEntry(ctx context.Context, entry *models.RaffleEntry) error
	SumEntries(ctx context.Context, raffleID uuid.UUID) (int64, error)
	SumEntriesForCustomer(ctx context.Context, raffleID, customerID uuid.UUID) (int64, error)
	ListEntries(ctx context.Context, raffleID uuid.UUID, params pagination.Params) (*EntryList, error)
}
