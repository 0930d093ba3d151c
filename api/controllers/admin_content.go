package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fulltechhq/fulltech-backend/api/responses"
	"github.com/fulltechhq/fulltech-backend/api/validators"
	"github.com/fulltechhq/fulltech-backend/internal/content"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

type createSlideRequest struct {
	Title    string  `json:"title" validate:"required"`
	Subtitle *string `json:"subtitle,omitempty"`
	ImageURL string  `json:"image_url" validate:"required,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position int     `json:"position" validate:"min=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type updateSlideRequest struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkURL  *string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position *int    `json:"position,omitempty" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type putConfigRequest struct {
	Value map[string]any `json:"value" validate:"required"`
}

// AdminCreateHeroSlide adds a carousel slide.
func AdminCreateHeroSlide(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		var body createSlideRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		slide, err := svc.CreateSlide(r.Context(), content.CreateSlideInput{
			Title:    body.Title,
			Subtitle: body.Subtitle,
			ImageURL: body.ImageURL,
			LinkURL:  body.LinkURL,
			Position: body.Position,
			IsActive: body.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, slide)
	}
}

// AdminUpdateHeroSlide applies a partial slide update.
func AdminUpdateHeroSlide(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		slideID, err := uuid.Parse(chi.URLParam(r, "slideId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid slide id"))
			return
		}

		var body updateSlideRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		slide, err := svc.UpdateSlide(r.Context(), slideID, content.UpdateSlideInput{
			Title:    body.Title,
			Subtitle: body.Subtitle,
			ImageURL: body.ImageURL,
			LinkURL:  body.LinkURL,
			Position: body.Position,
			IsActive: body.IsActive,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, slide)
	}
}

// AdminDeleteHeroSlide removes a carousel slide.
func AdminDeleteHeroSlide(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		slideID, err := uuid.Parse(chi.URLParam(r, "slideId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid slide id"))
			return
		}

		if err := svc.DeleteSlide(r.Context(), slideID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminPutSiteConfig replaces a site config entry.
func AdminPutSiteConfig(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		var body putConfigRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		config, err := svc.PutConfig(r.Context(), content.PutConfigInput{
			Key:   chi.URLParam(r, "key"),
			Value: body.Value,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, config)
	}
}
