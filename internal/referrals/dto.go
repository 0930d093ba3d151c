package referrals

import (
	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	"github.com/google/uuid"
)

// ReferralList is a cursor page of referrals made by one referrer.
type ReferralList struct {
	Referrals  []models.Referral
	NextCursor *string
}

// QualificationOutcome summarizes what Qualify changed.
type QualificationOutcome struct {
	Qualified  bool
	ReferralID uuid.UUID
	ReferrerID uuid.UUID
}
