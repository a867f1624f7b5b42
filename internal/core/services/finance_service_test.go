package services_test

import (
	"context"
	"testing"

	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
	"github.com/jslogistics/jsl-backend/internal/core/services"
	"github.com/jslogistics/jsl-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FinanceServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockOrderRepo *MockOrderRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.FinanceSvcFacade
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewFinanceService(suite.mockTxnRepo, suite.mockOrderRepo, suite.mockUserRepo)
}

func (suite *FinanceServiceTestSuite) TestGetSummary_DerivesEverything() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, clientID).Return(&domain.User{
		UserID:      clientID,
		CreditLimit: decimal.NewFromInt(500_000),
	}, nil).Once()
	suite.mockTxnRepo.On("SummarizeByClient", ctx, clientID).Return(portsrepo.LedgerTotals{
		TotalCharged:   decimal.NewFromInt(480_000),
		TotalPaid:      decimal.Zero,
		PendingCharges: decimal.NewFromInt(480_000),
	}, nil).Once()
	suite.mockOrderRepo.On("CountOrdersByClient", ctx, clientID).Return(portsrepo.OrderCounts{
		Total:     3,
		Delivered: 1,
		Active:    2,
	}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByClient", ctx, clientID, 5).Return([]domain.Transaction{
		{TransactionID: uuid.NewString(), Type: domain.TxCharge, Amount: decimal.NewFromInt(480_000)},
	}, nil).Once()

	summary, err := suite.service.GetSummary(ctx, clientID)

	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(decimal.NewFromInt(-480_000)))
	suite.True(summary.AvailableCredit.Equal(decimal.NewFromInt(20_000)))
	suite.True(summary.PendingCharges.Equal(decimal.NewFromInt(480_000)))
	suite.Equal(3, summary.TotalOrders)
	suite.Equal(1, summary.DeliveredOrders)
	suite.Equal(2, summary.ActiveOrders)
	suite.Len(summary.RecentTransactions, 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// Two summary calls with no intervening writes must produce identical output.
func (suite *FinanceServiceTestSuite) TestGetSummary_Idempotent() {
	ctx := context.Background()
	clientID := uuid.NewString()

	totals := portsrepo.LedgerTotals{
		TotalCharged:   decimal.NewFromInt(100_000),
		TotalPaid:      decimal.NewFromInt(40_000),
		PendingCharges: decimal.NewFromInt(60_000),
	}
	suite.mockUserRepo.On("FindUserByID", ctx, clientID).
		Return(&domain.User{UserID: clientID, CreditLimit: decimal.NewFromInt(1_000_000)}, nil).Twice()
	suite.mockTxnRepo.On("SummarizeByClient", ctx, clientID).Return(totals, nil).Twice()
	suite.mockOrderRepo.On("CountOrdersByClient", ctx, clientID).Return(portsrepo.OrderCounts{Total: 1, Active: 1}, nil).Twice()
	suite.mockTxnRepo.On("ListTransactionsByClient", ctx, clientID, 5).Return([]domain.Transaction{}, nil).Twice()

	first, err := suite.service.GetSummary(ctx, clientID)
	suite.Require().NoError(err)
	second, err := suite.service.GetSummary(ctx, clientID)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *FinanceServiceTestSuite) TestGetBalance_PositiveWhenOverpaid() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockTxnRepo.On("SummarizeByClient", ctx, clientID).Return(portsrepo.LedgerTotals{
		TotalCharged: decimal.NewFromInt(50_000),
		TotalPaid:    decimal.NewFromInt(80_000),
	}, nil).Once()

	balance, err := suite.service.GetBalance(ctx, clientID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(30_000)))
}

func (suite *FinanceServiceTestSuite) TestRegisterPayment_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.RegisterPaymentRequest{
		Amount:    decimal.NewFromInt(120_000),
		Reference: "CONS-4455",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, clientID).
		Return(&domain.User{UserID: clientID, IsActive: true}, nil).Once()
	suite.mockTxnRepo.On("SavePaymentWithSettlement", ctx, mock.MatchedBy(func(p domain.Transaction) bool {
		return p.ClientID == clientID &&
			p.Type == domain.TxPayment &&
			p.Status == domain.TxPaid &&
			p.OrderID == nil &&
			p.Amount.Equal(decimal.NewFromInt(120_000))
	})).Return(&domain.Transaction{TransactionID: uuid.NewString(), Type: domain.TxPayment, Amount: req.Amount}, nil).Once()

	payment, err := suite.service.RegisterPayment(ctx, clientID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.True(payment.Amount.Equal(req.Amount))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestRegisterPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()
	clientID := uuid.NewString()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5_000)} {
		payment, err := suite.service.RegisterPayment(ctx, clientID, dto.RegisterPaymentRequest{
			Amount:    amount,
			Reference: "CONS-0000",
		})
		suite.Require().Error(err)
		suite.Nil(payment)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SavePaymentWithSettlement")
}

func (suite *FinanceServiceTestSuite) TestListTransactions_EmptyIsNotNil() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockTxnRepo.On("ListTransactionsByClient", ctx, clientID, 0).Return(nil, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, clientID)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
