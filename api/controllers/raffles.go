package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fulltechhq/fulltech-backend/api/responses"
	"github.com/fulltechhq/fulltech-backend/api/validators"
	"github.com/fulltechhq/fulltech-backend/internal/raffles"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

type openRaffleRequest struct {
	Month int    `json:"month" validate:"required,min=1,max=12"`
	Year  int    `json:"year" validate:"required,min=2020"`
	Prize string `json:"prize" validate:"required"`
}

// PublicCurrentRaffle exposes this month's raffle and its entry total.
func PublicCurrentRaffle(svc raffles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raffles service unavailable"))
			return
		}

		summary, err := svc.Current(r.Context(), time.Now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if summary == nil {
			responses.WriteSuccess(w, map[string]any{"raffle": nil})
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// AdminOpenRaffle creates an active raffle for a month.
func AdminOpenRaffle(svc raffles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raffles service unavailable"))
			return
		}

		var body openRaffleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raffle, err := svc.Open(r.Context(), raffles.OpenRaffleInput{
			Month: body.Month,
			Year:  body.Year,
			Prize: body.Prize,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, raffle)
	}
}

// AdminCloseRaffle deactivates a raffle.
func AdminCloseRaffle(svc raffles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raffles service unavailable"))
			return
		}

		raffleID, err := uuid.Parse(chi.URLParam(r, "raffleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid raffle id"))
			return
		}

		if err := svc.Close(r.Context(), raffleID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "closed"})
	}
}

// AdminRaffleEntries lists a raffle's entries for auditing and drawing.
func AdminRaffleEntries(svc raffles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "raffles service unavailable"))
			return
		}

		raffleID, err := uuid.Parse(chi.URLParam(r, "raffleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid raffle id"))
			return
		}

		params, err := paginationFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.Entries(r.Context(), raffleID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"entries":     list.Entries,
			"next_cursor": list.NextCursor,
		})
	}
}
