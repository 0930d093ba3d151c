package raffles

import (
	"context"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a raffles repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, raffle *models.MonthlyRaffle) (*models.MonthlyRaffle, error) {
	if err := r.db.WithContext(ctx).Create(raffle).Error; err != nil {
		return nil, err
	}
	return raffle, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.MonthlyRaffle, error) {
	var raffle models.MonthlyRaffle
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&raffle).Error
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}

func (r *repository) FindActiveByPeriod(ctx context.Context, month, year int) (*models.MonthlyRaffle, error) {
	var raffle models.MonthlyRaffle
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ? AND is_active", month, year).
		Order("created_at DESC, id DESC").
		First(&raffle).Error
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.MonthlyRaffle{}).
		Where("id = ? AND is_active", id).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) DeactivateEndedBefore(ctx context.Context, month, year int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.MonthlyRaffle{}).
		Where("is_active AND (year < ? OR (year = ? AND month < ?))", year, year, month).
		Update("is_active", false)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *repository) CreateEntry(ctx context.Context, entry *models.RaffleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) SumEntries(ctx context.Context, raffleID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.RaffleEntry{}).
		Where("raffle_id = ?", raffleID).
		Select("COALESCE(SUM(entries), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) SumEntriesForCustomer(ctx context.Context, raffleID, customerID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.RaffleEntry{}).
		Where("raffle_id = ? AND customer_id = ?", raffleID, customerID).
		Select("COALESCE(SUM(entries), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) ListEntries(ctx context.Context, raffleID uuid.UUID, params pagination.Params) (*EntryList, error) {
	limit := pagination.NormalizeLimit(params.Limit)
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("Customer").
		Where("raffle_id = ?", raffleID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var entries []models.RaffleEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	list := &EntryList{Entries: entries}
	if len(entries) > limit {
		list.Entries = entries[:limit]
		last := list.Entries[limit-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		list.NextCursor = &next
	}
	return list, nil
}
