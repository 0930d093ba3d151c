package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fulltechhq/fulltech-backend/api/responses"
	"github.com/fulltechhq/fulltech-backend/internal/content"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

// PublicHeroSlides lists the active carousel slides in display order.
func PublicHeroSlides(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		slides, err := svc.PublicSlides(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, slides)
	}
}

// PublicSiteConfig serves a whitelisted site config entry.
func PublicSiteConfig(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		config, err := svc.PublicConfig(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, config)
	}
}
