package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of an immutable ledger entry.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	ClientID      string          `db:"client_id"`
	OrderID       *string         `db:"order_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	Status        string          `db:"status"`
}
