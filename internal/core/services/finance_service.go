package services

import (
	"context"
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

// recentTransactionsLimit bounds the dashboard's transaction preview.
const recentTransactionsLimit = 5

// financeService derives balances and summaries from the transaction log and
// registers client payments. The balance is always a fold over transactions;
// no stored copy exists to drift.
type financeService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	orderRepo portsrepo.OrderReader
	userRepo  portsrepo.UserReader
}

// NewFinanceService creates a new finance service.
func NewFinanceService(txnRepo portsrepo.TransactionRepositoryFacade, orderRepo portsrepo.OrderReader, userRepo portsrepo.UserReader) portssvc.FinanceSvcFacade {
	return &financeService{txnRepo: txnRepo, orderRepo: orderRepo, userRepo: userRepo}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) GetSummary(ctx context.Context, clientID string) (*domain.FinanceSummary, error) {
	user, err := s.userRepo.FindUserByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	totals, err := s.txnRepo.SummarizeByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize ledger", slog.String("client_id", clientID))
		return nil, err
	}

	counts, err := s.orderRepo.CountOrdersByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count orders", slog.String("client_id", clientID))
		return nil, err
	}

	recent, err := s.txnRepo.ListTransactionsByClient(ctx, clientID, recentTransactionsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions", slog.String("client_id", clientID))
		return nil, err
	}
	if recent == nil {
		recent = []domain.Transaction{}
	}

	balance := totals.Balance()
	return &domain.FinanceSummary{
		Balance:            balance,
		TotalCharged:       totals.TotalCharged,
		TotalPaid:          totals.TotalPaid,
		PendingCharges:     totals.PendingCharges,
		CreditLimit:        user.CreditLimit,
		AvailableCredit:    domain.AvailableCredit(user.CreditLimit, balance),
		TotalOrders:        counts.Total,
		DeliveredOrders:    counts.Delivered,
		ActiveOrders:       counts.Active,
		RecentTransactions: recent,
	}, nil
}

func (s *financeService) GetBalance(ctx context.Context, clientID string) (decimal.Decimal, error) {
	totals, err := s.txnRepo.SummarizeByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize ledger", slog.String("client_id", clientID))
		return decimal.Zero, err
	}
	return totals.Balance(), nil
}

func (s *financeService) ListTransactions(ctx context.Context, clientID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByClient(ctx, clientID, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("client_id", clientID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *financeService) RegisterPayment(ctx context.Context, clientID string, req dto.RegisterPaymentRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount)
	}

	if _, err := s.userRepo.FindUserByID(ctx, clientID); err != nil {
		return nil, err
	}

	payment := domain.Transaction{
		TransactionID: uuid.NewString(),
		ClientID:      clientID,
		OrderID:       nil,
		Type:          domain.TxPayment,
		Amount:        req.Amount,
		Description:   fmt.Sprintf("Pago recibido - ref %s", req.Reference),
		Date:          time.Now().UTC(),
		Status:        domain.TxPaid,
	}

	saved, err := s.txnRepo.SavePaymentWithSettlement(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to register payment", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment registered",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}
