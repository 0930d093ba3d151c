package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fulltechhq/fulltech-backend/api/responses"
	"github.com/fulltechhq/fulltech-backend/api/validators"
	"github.com/fulltechhq/fulltech-backend/internal/catalog"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

type createProductRequest struct {
	SKU                 string   `json:"sku" validate:"required"`
	Title               string   `json:"title" validate:"required"`
	Description         *string  `json:"description,omitempty"`
	CategoryID          *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	PriceCents          int64    `json:"price_cents" validate:"min=0"`
	CompareAtPriceCents *int64   `json:"compare_at_price_cents,omitempty" validate:"omitempty,min=0"`
	Tags                []string `json:"tags,omitempty"`
	Images              []string `json:"images,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
	IsFeatured          bool     `json:"is_featured,omitempty"`
}

type updateProductRequest struct {
	Title               *string  `json:"title,omitempty"`
	Description         *string  `json:"description,omitempty"`
	CategoryID          *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	PriceCents          *int64   `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	CompareAtPriceCents *int64   `json:"compare_at_price_cents,omitempty" validate:"omitempty,min=0"`
	Tags                []string `json:"tags,omitempty"`
	Images              []string `json:"images,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
	IsFeatured          *bool    `json:"is_featured,omitempty"`
}

type upsertCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Position int    `json:"position" validate:"min=0"`
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id")
	}
	return &id, nil
}

// AdminCreateProduct adds a catalog product.
func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		categoryID, err := parseOptionalUUID(body.CategoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), catalog.CreateProductInput{
			SKU:                 body.SKU,
			Title:               body.Title,
			Description:         body.Description,
			CategoryID:          categoryID,
			PriceCents:          body.PriceCents,
			CompareAtPriceCents: body.CompareAtPriceCents,
			Tags:                body.Tags,
			Images:              body.Images,
			IsActive:            body.IsActive,
			IsFeatured:          body.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial product update.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var body updateProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		categoryID, err := parseOptionalUUID(body.CategoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), productID, catalog.UpdateProductInput{
			Title:               body.Title,
			Description:         body.Description,
			CategoryID:          categoryID,
			PriceCents:          body.PriceCents,
			CompareAtPriceCents: body.CompareAtPriceCents,
			Tags:                body.Tags,
			Images:              body.Images,
			IsActive:            body.IsActive,
			IsFeatured:          body.IsFeatured,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a catalog product.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.Delete(r.Context(), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminUpsertCategory creates or renames a category addressed by slug.
func AdminUpsertCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body upsertCategoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.UpsertCategory(r.Context(), catalog.UpsertCategoryInput{
			Slug:     chi.URLParam(r, "slug"),
			Name:     body.Name,
			Position: body.Position,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}
