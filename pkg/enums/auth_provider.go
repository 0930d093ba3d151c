package enums

import "fmt"

// AuthProvider identifies which identity field a customer registered with.
type AuthProvider string

const (
	AuthProviderEmail AuthProvider = "email"
	AuthProviderPhone AuthProvider = "phone"
)

var validAuthProviders = []AuthProvider{
	AuthProviderEmail,
	AuthProviderPhone,
}

// String implements fmt.Stringer.
func (a AuthProvider) String() string {
	return string(a)
}

// IsValid reports whether the value is known.
func (a AuthProvider) IsValid() bool {
	for _, candidate := range validAuthProviders {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAuthProvider converts raw input into an AuthProvider.
func ParseAuthProvider(value string) (AuthProvider, error) {
	for _, candidate := range validAuthProviders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid auth provider %q", value)
}
