package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterCustomerInput holds the validated customer sign-up payload.
type RegisterCustomerInput struct {
	Email        string
	Password     string
	CustomerName string
	Phone        *string
	Address      *string
	PaymentTerms *string
}

// RegisterEmployeeInput holds the validated employee sign-up payload.
type RegisterEmployeeInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	JobTitle string
	Salary   *decimal.Decimal
	JoinDate *time.Time
}

// LoginInput holds credentials for the login flow.
type LoginInput struct {
	Email    string
	Password string
}

// TokenPairDTO carries the access JWT and its paired refresh token.
type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// IdentityDTO describes the authenticated principal.
type IdentityDTO struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// AuthResultDTO is returned by register and login flows.
type AuthResultDTO struct {
	Identity IdentityDTO  `json:"identity"`
	Tokens   TokenPairDTO `json:"tokens"`
}
