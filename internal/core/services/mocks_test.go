package services_test

import (
	"context"
	"time"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock OrderRepository ---

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderRepository) FindOrderByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	args := m.Called(ctx, trackingNumber)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	args := m.Called(ctx, clientID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *MockOrderRepository) CountOrdersByClient(ctx context.Context, clientID string) (portsrepo.OrderCounts, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(portsrepo.OrderCounts), args.Error(1)
}

func (m *MockOrderRepository) CreateOrderWithCharge(ctx context.Context, order domain.Order, charge domain.Transaction) (*domain.Order, error) {
	args := m.Called(ctx, order, charge)
	var created *domain.Order
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Order)
	}
	return created, args.Error(1)
}

func (m *MockOrderRepository) AdvanceOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus, location string, now time.Time) (*domain.Order, error) {
	args := m.Called(ctx, orderID, next, location, now)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsByClient(ctx context.Context, clientID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, clientID, limit)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SummarizeByClient(ctx context.Context, clientID string) (portsrepo.LedgerTotals, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(portsrepo.LedgerTotals), args.Error(1)
}

func (m *MockTransactionRepository) SavePaymentWithSettlement(ctx context.Context, payment domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, payment)
	var saved *domain.Transaction
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Transaction)
	}
	return saved, args.Error(1)
}
