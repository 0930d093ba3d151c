package content

import (
	"context"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a content repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, error) {
	if err := r.db.WithContext(ctx).Create(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

func (r *repository) FindSlideByID(ctx context.Context, id uuid.UUID) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slide).Error
	if err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *repository) UpdateSlide(ctx context.Context, slide *models.HeroSlide) error {
	return r.db.WithContext(ctx).Save(slide).Error
}

func (r *repository) DeleteSlide(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.HeroSlide{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) ListActiveSlides(ctx context.Context) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("position ASC, created_at ASC").
		Find(&slides).Error
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *repository) ListSlides(ctx context.Context) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.WithContext(ctx).
		Order("position ASC, created_at ASC").
		Find(&slides).Error
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *repository) FindConfigByKey(ctx context.Context, key string) (*models.SiteConfig, error) {
	var config models.SiteConfig
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&config).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *repository) UpsertConfig(ctx context.Context, config *models.SiteConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(config).Error
}
