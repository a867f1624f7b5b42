package domain

import (
	"github.com/shopspring/decimal"
)

// UserRole distinguishes portal clients from operations staff.
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User represents a client account of the portal.
// Balance is never stored on the user row; it is always derived as a fold
// over the account's transactions. CreditLimit bounds how far negative that
// derived balance may go before new charges are rejected.
type User struct {
	UserID       string          `json:"id"`
	Name         string          `json:"name"`
	Company      string          `json:"company"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	NIT          string          `json:"nit"`
	PasswordHash string          `json:"-"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	Role         UserRole        `json:"role"`
	IsActive     bool            `json:"active"`
	AuditFields
}
