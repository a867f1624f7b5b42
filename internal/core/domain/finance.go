package domain

import (
	"fmt"

	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FinanceSummary is a read-side projection over an account's transactions
// and orders. It is computed on demand and never stored; every field must
// equal a fold over the transaction log.
type FinanceSummary struct {
	Balance            decimal.Decimal `json:"balance"`
	TotalCharged       decimal.Decimal `json:"totalCharged"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	PendingCharges     decimal.Decimal `json:"pendingCharges"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	AvailableCredit    decimal.Decimal `json:"availableCredit"`
	TotalOrders        int             `json:"totalOrders"`
	DeliveredOrders    int             `json:"deliveredOrders"`
	ActiveOrders       int             `json:"activeOrders"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
}

// AvailableCredit computes how much new charge volume an account can absorb:
// max(0, creditLimit + min(0, balance)). A positive balance (the company owes
// the client) does not extend credit beyond the configured limit.
func AvailableCredit(creditLimit, balance decimal.Decimal) decimal.Decimal {
	available := creditLimit
	if balance.IsNegative() {
		available = creditLimit.Add(balance)
	}
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// AdmitCharge decides whether an account can absorb a new charge. An exact
// fit is admitted; anything past the available credit is rejected with
// ErrCreditLimitExceeded.
func AdmitCharge(creditLimit, balance, amount decimal.Decimal) error {
	available := AvailableCredit(creditLimit, balance)
	if available.LessThan(amount) {
		return fmt.Errorf("%w: cost %s exceeds available credit %s",
			apperrors.ErrCreditLimitExceeded, amount, available)
	}
	return nil
}

// UnpaidCharge is the slice of a charge transaction that settlement needs.
type UnpaidCharge struct {
	TransactionID string
	OrderID       *string
	Amount        decimal.Decimal
}

// SettleCharges folds the paid pool over unpaid charges given oldest-first
// and returns the ones it covers in full. Settlement stops at the first
// charge the remaining pool cannot cover; later charges stay unpaid even
// when smaller, so charges never settle out of order.
func SettleCharges(pool decimal.Decimal, charges []UnpaidCharge) []UnpaidCharge {
	var settled []UnpaidCharge
	for _, c := range charges {
		if pool.LessThan(c.Amount) {
			break
		}
		pool = pool.Sub(c.Amount)
		settled = append(settled, c)
	}
	return settled
}
