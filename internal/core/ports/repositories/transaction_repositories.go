package repositories

import (
	"context"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerTotals is the fold over a client's transaction log.
type LedgerTotals struct {
	TotalCharged   decimal.Decimal
	TotalPaid      decimal.Decimal
	PendingCharges decimal.Decimal
}

// Balance derives the signed account balance from the fold: negative means
// the client owes the company.
func (t LedgerTotals) Balance() decimal.Decimal {
	return t.TotalPaid.Sub(t.TotalCharged)
}

// TransactionReader defines read operations over the append-only ledger.
type TransactionReader interface {
	// ListTransactionsByClient returns entries most-recent-first. A limit of
	// zero means no limit.
	ListTransactionsByClient(ctx context.Context, clientID string, limit int) ([]domain.Transaction, error)
	SummarizeByClient(ctx context.Context, clientID string) (LedgerTotals, error)
}

// TransactionWriter appends to the ledger. Entries are never edited or
// deleted; corrections are new offsetting transactions.
type TransactionWriter interface {
	// SavePaymentWithSettlement appends a payment and FIFO-settles unpaid
	// charges in the same database transaction: the oldest unpaid charges
	// covered in full by the cumulative paid amount flip to paid, and so do
	// their orders' payment statuses. The client row is locked so settlement
	// serializes with concurrent charge admission.
	SavePaymentWithSettlement(ctx context.Context, payment domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all ledger repository capabilities.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
