package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fulltechhq/fulltech-backend/api/responses"
	"github.com/fulltechhq/fulltech-backend/api/validators"
	"github.com/fulltechhq/fulltech-backend/internal/purchases"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/fulltechhq/fulltech-backend/pkg/logger"
)

type recordPurchaseRequest struct {
	ProductID       string `json:"product_id" validate:"required,uuid"`
	Quantity        int    `json:"quantity" validate:"required,min=1"`
	TotalPriceCents int64  `json:"total_price_cents" validate:"min=0"`
	DiscountApplied int    `json:"discount_applied" validate:"min=0,max=100"`
}

// CustomerPurchase records a purchase and runs the referral pipeline.
func CustomerPurchase(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "purchases service unavailable"))
			return
		}

		customerID, err := customerIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body recordPurchaseRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(body.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		result, err := svc.Record(r.Context(), purchases.RecordInput{
			CustomerID:      customerID,
			ProductID:       productID,
			Quantity:        body.Quantity,
			TotalPriceCents: body.TotalPriceCents,
			DiscountApplied: body.DiscountApplied,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// CustomerPurchases lists the customer's purchase history.
func CustomerPurchases(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "purchases service unavailable"))
			return
		}

		customerID, err := customerIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := paginationFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListForCustomer(r.Context(), customerID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"purchases":   list.Purchases,
			"next_cursor": list.NextCursor,
		})
	}
}
