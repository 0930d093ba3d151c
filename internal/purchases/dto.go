package purchases

import (
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/google/uuid"
)

// RecordInput captures a purchase reported by the storefront.
type RecordInput struct {
	CustomerID      uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	TotalPriceCents int64
	DiscountApplied int
}

// RecordResult reports the stored purchase and any referral side effects.
type RecordResult struct {
	Purchase          models.CustomerPurchase `json:"purchase"`
	ReferralQualified bool                    `json:"referral_qualified"`
	RaffleEntry       bool                    `json:"raffle_entry_granted"`
}

// PurchaseList is a cursor page of purchases.
type PurchaseList struct {
	Purchases  []models.CustomerPurchase
	NextCursor *string
}
