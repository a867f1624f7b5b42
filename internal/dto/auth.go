package dto

import (
	"time"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterRequest defines the data needed to register a new client account.
// Credit limit is intentionally absent: it is assigned server-side.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	NIT      string `json:"nit" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the login credentials payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse mirrors the portal's user shape. Balance is the derived fold
// over the account's transactions, not a stored field.
type UserResponse struct {
	UserID      string          `json:"id"`
	Name        string          `json:"name"`
	Company     string          `json:"company"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	NIT         string          `json:"nit"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	Balance     decimal.Decimal `json:"balance"`
	Role        domain.UserRole `json:"role"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// AuthResponse carries the signed token together with the account profile.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User plus its derived balance to the
// response shape.
func ToUserResponse(u *domain.User, balance decimal.Decimal) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		Company:     u.Company,
		Email:       u.Email,
		Phone:       u.Phone,
		Address:     u.Address,
		NIT:         u.NIT,
		CreditLimit: u.CreditLimit,
		Balance:     balance,
		Role:        u.Role,
		Active:      u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}
