package catalog

import (
	"context"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for products and categories.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
	ListProducts(ctx context.Context, filter ProductFilter) (*ProductList, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	UpsertCategory(ctx context.Context, category *models.Category) error
}
