package enums

import "fmt"

// ActivityType labels entries in a customer's activity feed.
type ActivityType string

const (
	ActivityTypePurchase          ActivityType = "purchase"
	ActivityTypeReferralQualified ActivityType = "referral_qualified"
	ActivityTypeRaffleEntry       ActivityType = "raffle_entry"
)

var validActivityTypes = []ActivityType{
	ActivityTypePurchase,
	ActivityTypeReferralQualified,
	ActivityTypeRaffleEntry,
}

// String implements fmt.Stringer.
func (a ActivityType) String() string {
	return string(a)
}

// IsValid reports whether the value is known.
func (a ActivityType) IsValid() bool {
	for _, candidate := range validActivityTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseActivityType converts raw input into an ActivityType.
func ParseActivityType(value string) (ActivityType, error) {
	for _, candidate := range validActivityTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity type %q", value)
}
