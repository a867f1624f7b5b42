package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the database representation of a client account.
type User struct {
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Company      string          `db:"company"`
	Email        string          `db:"email"`
	Phone        string          `db:"phone"`
	Address      string          `db:"address"`
	NIT          string          `db:"nit"`
	PasswordHash string          `db:"password_hash"`
	CreditLimit  decimal.Decimal `db:"credit_limit"`
	Role         string          `db:"role"`
	IsActive     bool            `db:"is_active"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
