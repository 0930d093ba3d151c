package auth

import (
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	CustomerID uuid.UUID
	Role       enums.CustomerRole
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	CustomerID uuid.UUID          `json:"customer_id"`
	Role       enums.CustomerRole `json:"role"`
	jwt.RegisteredClaims
}
