package dto

import (
	"time"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest defines the payload for registering a client payment.
type RegisterPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reference string          `json:"reference" binding:"required"`
}

// TransactionResponse mirrors a ledger entry.
type TransactionResponse struct {
	TransactionID string                   `json:"id"`
	ClientID      string                   `json:"clientId"`
	OrderID       *string                  `json:"orderId"`
	Type          domain.TransactionType   `json:"type"`
	Amount        decimal.Decimal          `json:"amount"`
	Description   string                   `json:"description"`
	Date          time.Time                `json:"date"`
	Status        domain.TransactionStatus `json:"status"`
}

// FinanceSummaryResponse mirrors domain.FinanceSummary for the dashboard.
type FinanceSummaryResponse struct {
	Balance            decimal.Decimal       `json:"balance"`
	TotalCharged       decimal.Decimal       `json:"totalCharged"`
	TotalPaid          decimal.Decimal       `json:"totalPaid"`
	PendingCharges     decimal.Decimal       `json:"pendingCharges"`
	CreditLimit        decimal.Decimal       `json:"creditLimit"`
	AvailableCredit    decimal.Decimal       `json:"availableCredit"`
	TotalOrders        int                   `json:"totalOrders"`
	DeliveredOrders    int                   `json:"deliveredOrders"`
	ActiveOrders       int                   `json:"activeOrders"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// ToTransactionResponse converts a domain.Transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ClientID:      t.ClientID,
		OrderID:       t.OrderID,
		Type:          t.Type,
		Amount:        t.Amount,
		Description:   t.Description,
		Date:          t.Date,
		Status:        t.Status,
	}
}

// ToListTransactionResponse converts a slice of domain transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToFinanceSummaryResponse converts a domain.FinanceSummary.
func ToFinanceSummaryResponse(s *domain.FinanceSummary) FinanceSummaryResponse {
	return FinanceSummaryResponse{
		Balance:            s.Balance,
		TotalCharged:       s.TotalCharged,
		TotalPaid:          s.TotalPaid,
		PendingCharges:     s.PendingCharges,
		CreditLimit:        s.CreditLimit,
		AvailableCredit:    s.AvailableCredit,
		TotalOrders:        s.TotalOrders,
		DeliveredOrders:    s.DeliveredOrders,
		ActiveOrders:       s.ActiveOrders,
		RecentTransactions: ToListTransactionResponse(s.RecentTransactions),
	}
}
