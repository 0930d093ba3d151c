package customers

import (
	"time"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/google/uuid"
)

// RegisterInput captures the fields accepted at signup.
type RegisterInput struct {
	Email        *string
	Phone        *string
	Password     string
	Name         string
	ReferralCode *string
}

// LoginInput carries one identity plus the password.
type LoginInput struct {
	Email    *string
	Phone    *string
	Password string
}

// ActivityList is a cursor page of a customer's activity feed.
type ActivityList struct {
	Activities []models.CustomerActivity
	NextCursor *string
}

// Profile is the customer-facing view of an account.
type Profile struct {
	ID             uuid.UUID  `json:"id"`
	Email          *string    `json:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Name           string     `json:"name"`
	ReferralCode   string     `json:"referral_code"`
	ReferredBy     *uuid.UUID `json:"referred_by,omitempty"`
	DiscountEarned int        `json:"discount_earned"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewProfile maps a customer row to its public projection.
func NewProfile(customer *models.Customer) *Profile {
	if customer == nil {
		return nil
	}
	return &Profile{
		ID:             customer.ID,
		Email:          customer.Email,
		Phone:          customer.Phone,
		Name:           customer.Name,
		ReferralCode:   customer.ReferralCode,
		ReferredBy:     customer.ReferredBy,
		DiscountEarned: customer.DiscountEarned,
		CreatedAt:      customer.CreatedAt,
	}
}
