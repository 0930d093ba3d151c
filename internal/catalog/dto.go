package catalog

import (
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/fulltechhq/fulltech-backend/pkg/pagination"
	"github.com/google/uuid"
)

// ProductFilter narrows the public product listing.
type ProductFilter struct {
	CategorySlug string
	Tag          string
	FeaturedOnly bool
	ActiveOnly   bool
	Pagination   pagination.Params
}

// ProductList is a cursor page of products.
type ProductList struct {
	Products   []models.Product
	NextCursor *string
}

// CreateProductInput captures the admin create payload.
type CreateProductInput struct {
	SKU                 string
	Title               string
	Description         *string
	CategoryID          *uuid.UUID
	PriceCents          int64
	CompareAtPriceCents *int64
	Tags                []string
	Images              []string
	IsActive            *bool
	IsFeatured          bool
}

// UpdateProductInput carries partial updates; nil fields are untouched.
type UpdateProductInput struct {
	Title               *string
	Description         *string
	CategoryID          *uuid.UUID
	PriceCents          *int64
	CompareAtPriceCents *int64
	Tags                []string
	Images              []string
	IsActive            *bool
	IsFeatured          *bool
}

// UpsertCategoryInput captures the admin category payload keyed by slug.
type UpsertCategoryInput struct {
	Slug     string
	Name     string
	Position int
}
