package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
	"github.com/jslogistics/jsl-backend/internal/dto"
)

// orderService orchestrates order creation and lifecycle mutation over the
// account store, the order ledger and the transaction log.
type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	userRepo  portsrepo.UserReader
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, userRepo portsrepo.UserReader) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) CreateOrder(ctx context.Context, clientID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	if req.WeightKg.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: weight must be positive", apperrors.ErrValidation)
	}
	if req.DeclaredValueCOP.IsNegative() {
		return nil, fmt.Errorf("%w: declared value must not be negative", apperrors.ErrValidation)
	}
	if !domain.IsValidServiceType(req.ServiceType) {
		return nil, fmt.Errorf("%w: unknown service type %q", apperrors.ErrValidation, req.ServiceType)
	}

	client, err := s.userRepo.FindUserByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load client for order creation", slog.String("client_id", clientID))
		return nil, err
	}
	if !client.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrValidation)
	}

	cost, err := domain.ShippingCost(req.ServiceType, req.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	orderID := uuid.NewString()

	order := domain.Order{
		OrderID:            orderID,
		ClientID:           clientID,
		SenderCompany:      client.Company,
		SenderContact:      client.Name,
		SenderPhone:        client.Phone,
		SenderAddress:      client.Address,
		RecipientName:      req.RecipientName,
		RecipientContact:   req.RecipientContact,
		RecipientPhone:     req.RecipientPhone,
		RecipientAddress:   req.RecipientAddress,
		RecipientCity:      req.RecipientCity,
		PackageDescription: req.PackageDescription,
		WeightKg:           req.WeightKg,
		DimensionsCm:       req.DimensionsCm,
		DeclaredValueCOP:   req.DeclaredValueCOP,
		ServiceType:        req.ServiceType,
		ShippingCostCOP:    cost,
		PaymentStatus:      domain.PaymentPending,
		Status:             domain.StatusCreated,
		EstimatedDelivery:  domain.EstimatedDelivery(req.ServiceType, now),
		Timeline:           domain.NewTimeline(client.Address, now),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	chargeOrderID := orderID
	charge := domain.Transaction{
		TransactionID: uuid.NewString(),
		ClientID:      clientID,
		OrderID:       &chargeOrderID,
		Type:          domain.TxCharge,
		Amount:        cost,
		Description:   fmt.Sprintf("Envío %s a %s", req.ServiceType, req.RecipientCity),
		Date:          now,
		Status:        domain.TxUnpaid,
	}

	// Admission against the credit limit happens inside the repository,
	// under the client's row lock, in the same database transaction that
	// writes the order and the charge.
	created, err := s.orderRepo.CreateOrderWithCharge(ctx, order, charge)
	if err != nil {
		if errors.Is(err, apperrors.ErrCreditLimitExceeded) {
			s.LogWarn(ctx, "Order rejected by credit admission",
				slog.String("client_id", clientID),
				slog.String("cost", cost.String()))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to create order", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Order created",
		slog.String("order_id", created.OrderID),
		slog.String("tracking_number", created.TrackingNumber),
		slog.String("cost", cost.String()))
	return created, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, requesterID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		}
		return nil, err
	}

	if order.ClientID != requesterID {
		requester, err := s.userRepo.FindUserByID(ctx, requesterID)
		if err != nil || requester.Role != domain.RoleAdmin {
			s.LogWarn(ctx, "Order access denied",
				slog.String("order_id", orderID),
				slog.String("requester_id", requesterID))
			return nil, apperrors.ErrForbidden
		}
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, clientID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrdersByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("client_id", clientID))
		return nil, err
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (s *orderService) AdvanceOrderStatus(ctx context.Context, requesterID, orderID string, req dto.AdvanceStatusRequest) (*domain.Order, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.Role != domain.RoleAdmin {
		s.LogWarn(ctx, "Status change denied for non-admin",
			slog.String("order_id", orderID),
			slog.String("requester_id", requesterID))
		return nil, apperrors.ErrForbidden
	}

	if !domain.IsValidStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, req.Status)
	}

	order, err := s.orderRepo.AdvanceOrderStatus(ctx, orderID, req.Status, req.Location, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) || errors.Is(err, apperrors.ErrOrderTerminal) {
			s.LogWarn(ctx, "Rejected status transition",
				slog.String("order_id", orderID),
				slog.String("to", string(req.Status)))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to advance order status", slog.String("order_id", orderID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Order status advanced",
		slog.String("order_id", orderID),
		slog.String("status", string(order.Status)))
	return order, nil
}
