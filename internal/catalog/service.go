package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgdb "github.com/fulltechhq/fulltech-backend/pkg/db"
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Service exposes the catalog to the storefront and the admin surface.
type Service interface {
	ListPublic(ctx context.Context, filter ProductFilter) (*ProductList, error)
	GetPublic(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)

	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, productID uuid.UUID) error
	UpsertCategory(ctx context.Context, input UpsertCategoryInput) (*models.Category, error)
}

// ServiceParams collect the dependencies for NewService.
type ServiceParams struct {
	Repo Repository
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: params.Repo}, nil
}

// ListPublic always constrains the listing to active products.
func (s *service) ListPublic(ctx context.Context, filter ProductFilter) (*ProductList, error) {
	filter.ActiveOnly = true
	list, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return list, nil
}

func (s *service) GetPublic(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return categories, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sku required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title required")
	}
	if input.PriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	product := &models.Product{
		SKU:                 sku,
		Title:               strings.TrimSpace(input.Title),
		Description:         input.Description,
		CategoryID:          input.CategoryID,
		PriceCents:          input.PriceCents,
		CompareAtPriceCents: input.CompareAtPriceCents,
		Tags:                pq.StringArray(input.Tags),
		Images:              pq.StringArray(input.Images),
		IsActive:            true,
		IsFeatured:          input.IsFeatured,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if product.Tags == nil {
		product.Tags = pq.StringArray{}
	}
	if product.Images == nil {
		product.Images = pq.StringArray{}
	}

	if _, err := s.repo.CreateProduct(ctx, product); err != nil {
		if pkgdb.IsUniqueViolation(err, "ux_products_sku") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "sku already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return product, nil
}

func (s *service) Update(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
		}
		product.Title = title
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.PriceCents != nil {
		if *input.PriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		product.PriceCents = *input.PriceCents
	}
	if input.CompareAtPriceCents != nil {
		product.CompareAtPriceCents = input.CompareAtPriceCents
	}
	if input.Tags != nil {
		product.Tags = pq.StringArray(input.Tags)
	}
	if input.Images != nil {
		product.Images = pq.StringArray(input.Images)
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	deleted, err := s.repo.DeleteProduct(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

func (s *service) UpsertCategory(ctx context.Context, input UpsertCategoryInput) (*models.Category, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}

	category := &models.Category{
		Slug:     slug,
		Name:     strings.TrimSpace(input.Name),
		Position: input.Position,
	}
	if err := s.repo.UpsertCategory(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert category")
	}

	stored, err := s.repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	return stored, nil
}
