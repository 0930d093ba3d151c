package enums

import "fmt"

// ReferralStatus tracks the lifecycle of a referral relationship.
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusQualified ReferralStatus = "qualified"
	ReferralStatusRewarded  ReferralStatus = "rewarded"
)

var validReferralStatuses = []ReferralStatus{
	ReferralStatusPending,
	ReferralStatusQualified,
	ReferralStatusRewarded,
}

// String implements fmt.Stringer.
func (r ReferralStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is known.
func (r ReferralStatus) IsValid() bool {
	for _, candidate := range validReferralStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReferralStatus converts raw input into a ReferralStatus.
func ParseReferralStatus(value string) (ReferralStatus, error) {
	for _, candidate := range validReferralStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid referral status %q", value)
}
