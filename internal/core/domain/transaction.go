package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry charges the client or
// records a payment from the client.
type TransactionType string

const (
	TxCharge  TransactionType = "charge"
	TxPayment TransactionType = "payment"
)

// TransactionStatus is per-charge settlement bookkeeping. Payments are
// always recorded as paid; charges start unpaid and flip to paid when FIFO
// settlement fully covers them.
type TransactionStatus string

const (
	TxPaid   TransactionStatus = "paid"
	TxUnpaid TransactionStatus = "unpaid"
)

// Transaction is an immutable, append-only ledger entry. Amount is always a
// positive magnitude; the sign is implied by the type. Charges carry the
// order that produced them, payments carry no order. Corrections are new
// offsetting transactions, never edits.
type Transaction struct {
	TransactionID string            `json:"id"`
	ClientID      string            `json:"clientId"`
	OrderID       *string           `json:"orderId"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	Date          time.Time         `json:"date"`
	Status        TransactionStatus `json:"status"`
}
