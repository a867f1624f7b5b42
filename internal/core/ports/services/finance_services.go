package services

import (
	"context"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/jslogistics/jsl-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// FinanceSvcFacade derives account balances from the transaction log and
// accepts client payments.
type FinanceSvcFacade interface {
	// GetSummary folds the client's transactions and order counts into the
	// dashboard projection. Two calls with no intervening mutation yield
	// identical output.
	GetSummary(ctx context.Context, clientID string) (*domain.FinanceSummary, error)

	// GetBalance returns just the derived signed balance.
	GetBalance(ctx context.Context, clientID string) (decimal.Decimal, error)

	// ListTransactions returns the client's ledger most-recent-first.
	ListTransactions(ctx context.Context, clientID string) ([]domain.Transaction, error)

	// RegisterPayment appends a payment transaction and FIFO-settles unpaid
	// charges. Returns ErrInvalidAmount when amount <= 0.
	RegisterPayment(ctx context.Context, clientID string, req dto.RegisterPaymentRequest) (*domain.Transaction, error)
}
