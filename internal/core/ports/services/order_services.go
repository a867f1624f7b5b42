package services

import (
	"context"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/jslogistics/jsl-backend/internal/dto"
)

// OrderSvcFacade orchestrates order creation and lifecycle mutation.
type OrderSvcFacade interface {
	// CreateOrder computes the shipping cost, admits the charge against the
	// client's available credit and persists order, timeline and charge
	// transaction atomically. Returns ErrCreditLimitExceeded when the charge
	// does not fit.
	CreateOrder(ctx context.Context, clientID string, req dto.CreateOrderRequest) (*domain.Order, error)

	// GetOrderByID returns the full order. Returns ErrForbidden when the
	// requester neither owns the order nor has the admin role.
	GetOrderByID(ctx context.Context, requesterID, orderID string) (*domain.Order, error)

	// ListOrders returns the client's orders most-recent-first.
	ListOrders(ctx context.Context, clientID string) ([]domain.Order, error)

	// AdvanceOrderStatus applies a lifecycle transition. Admin-only; this is
	// the sole mutator of order state after creation.
	AdvanceOrderStatus(ctx context.Context, requesterID, orderID string, req dto.AdvanceStatusRequest) (*domain.Order, error)
}

// TrackingSvcFacade is the least-privilege public lookup: tracking number in,
// shipment-safe order out. Unknown and malformed numbers are both ErrNotFound.
type TrackingSvcFacade interface {
	Track(ctx context.Context, trackingNumber string) (*domain.Order, error)
}
