package repositories

import (
	"context"
	"time"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
)

// OrderCounts aggregates per-client order counts for the finance summary.
type OrderCounts struct {
	Total     int
	Delivered int
	Active    int
}

// OrderReader defines read operations for orders.
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	// FindOrderByTrackingNumber returns ErrNotFound for an unknown number.
	FindOrderByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Order, error)
	// ListOrdersByClient returns the client's orders most-recent-first.
	ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
	CountOrdersByClient(ctx context.Context, clientID string) (OrderCounts, error)
}

// OrderWriter defines the two mutations an order ever sees.
type OrderWriter interface {
	// CreateOrderWithCharge persists the order, allocates its tracking number
	// and appends the charge transaction in a single database transaction.
	// The client's row is locked for the duration so the credit admission
	// check is serialized per account: the charge is admitted only if the
	// derived balance leaves room under the credit limit, otherwise
	// ErrCreditLimitExceeded is returned and nothing is written.
	CreateOrderWithCharge(ctx context.Context, order domain.Order, charge domain.Transaction) (*domain.Order, error)

	// AdvanceOrderStatus applies a status transition under a per-order row
	// lock so concurrent transitions cannot race past each other. Returns
	// ErrInvalidTransition or ErrOrderTerminal per the state machine.
	AdvanceOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus, location string, now time.Time) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order repository capabilities.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
