package content

import (
	"context"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for storefront content.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, error)
	FindSlideByID(ctx context.Context, id uuid.UUID) (*models.HeroSlide, error)
	UpdateSlide(ctx context.Context, slide *models.HeroSlide) error
	DeleteSlide(ctx context.Context, id uuid.UUID) (bool, error)
	ListActiveSlides(ctx context.Context) ([]models.HeroSlide, error)
	ListSlides(ctx context.Context) ([]models.HeroSlide, error)

	FindConfigByKey(ctx context.Context, key string) (*models.SiteConfig, error)
	UpsertConfig(ctx context.Context, config *models.SiteConfig) error
}
