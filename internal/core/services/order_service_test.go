package services_test

import (
	"context"
	"testing"

	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
	"github.com/jslogistics/jsl-backend/internal/core/services"
	"github.com/jslogistics/jsl-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockOrderRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockUserRepo)
}

func activeClient() *domain.User {
	return &domain.User{
		UserID:      uuid.NewString(),
		Name:        "Carlos Mendoza",
		Company:     "Importadora Andina SAS",
		Phone:       "+57 310 555 0101",
		Address:     "Calle 72 #10-34, Bogotá",
		CreditLimit: decimal.NewFromInt(1_000_000),
		Role:        domain.RoleClient,
		IsActive:    true,
	}
}

func validCreateOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		RecipientName:      "Ferretería El Tornillo",
		RecipientContact:   "Luisa Rojas",
		RecipientPhone:     "+57 312 555 0202",
		RecipientAddress:   "Carrera 45 #18-20",
		RecipientCity:      "Medellín",
		PackageDescription: "Repuestos industriales",
		WeightKg:           decimal.NewFromInt(1),
		DimensionsCm:       "30x20x15",
		DeclaredValueCOP:   decimal.NewFromInt(250_000),
		ServiceType:        domain.ServiceStandard,
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	client := activeClient()
	req := validCreateOrderRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, client.UserID).Return(client, nil).Once()

	// 8000*1 + 30000 = 38000, already a multiple of 1000.
	expectedCost := decimal.NewFromInt(38_000)
	suite.mockOrderRepo.On("CreateOrderWithCharge", ctx,
		mock.MatchedBy(func(order domain.Order) bool {
			return order.ClientID == client.UserID &&
				order.SenderCompany == client.Company &&
				order.SenderAddress == client.Address &&
				order.Status == domain.StatusCreated &&
				order.PaymentStatus == domain.PaymentPending &&
				order.ShippingCostCOP.Equal(expectedCost) &&
				len(order.Timeline) == 5 &&
				order.Timeline[0].Completed
		}),
		mock.MatchedBy(func(charge domain.Transaction) bool {
			return charge.Type == domain.TxCharge &&
				charge.Amount.Equal(expectedCost) &&
				charge.Status == domain.TxUnpaid &&
				charge.OrderID != nil
		}),
	).Return(&domain.Order{OrderID: uuid.NewString(), TrackingNumber: "JSL-2026-0001", Status: domain.StatusCreated}, nil).Once()

	order, err := suite.service.CreateOrder(ctx, client.UserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal("JSL-2026-0001", order.TrackingNumber)
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_InvalidWeight() {
	ctx := context.Background()
	req := validCreateOrderRequest()
	req.WeightKg = decimal.Zero

	order, err := suite.service.CreateOrder(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CreateOrderWithCharge")
}

func (suite *OrderServiceTestSuite) TestCreateOrder_CreditLimitExceeded() {
	ctx := context.Background()
	client := activeClient()
	req := validCreateOrderRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, client.UserID).Return(client, nil).Once()
	suite.mockOrderRepo.On("CreateOrderWithCharge", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("domain.Transaction")).
		Return(nil, apperrors.ErrCreditLimitExceeded).Once()

	order, err := suite.service.CreateOrder(ctx, client.UserID, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrCreditLimitExceeded)
}

// A client with 500,000 of credit headroom can place a 480,000 order; the
// next 50,000 order must be rejected until a payment frees room again.
func (suite *OrderServiceTestSuite) TestCreateOrder_CreditScenario() {
	ctx := context.Background()
	client := activeClient()
	client.CreditLimit = decimal.NewFromInt(500_000)
	req := validCreateOrderRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, client.UserID).Return(client, nil)

	// First order: admitted.
	suite.mockOrderRepo.On("CreateOrderWithCharge", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("domain.Transaction")).
		Return(&domain.Order{OrderID: "o1", TrackingNumber: "JSL-2026-0001"}, nil).Once()
	// Second order: the derived balance leaves only 20,000 of headroom.
	suite.mockOrderRepo.On("CreateOrderWithCharge", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("domain.Transaction")).
		Return(nil, apperrors.ErrCreditLimitExceeded).Once()
	// Third order, after a payment settled the first charge: admitted again.
	suite.mockOrderRepo.On("CreateOrderWithCharge", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("domain.Transaction")).
		Return(&domain.Order{OrderID: "o2", TrackingNumber: "JSL-2026-0002"}, nil).Once()

	first, err := suite.service.CreateOrder(ctx, client.UserID, req)
	suite.Require().NoError(err)
	suite.Equal("o1", first.OrderID)

	second, err := suite.service.CreateOrder(ctx, client.UserID, req)
	suite.Require().ErrorIs(err, apperrors.ErrCreditLimitExceeded)
	suite.Nil(second)

	third, err := suite.service.CreateOrder(ctx, client.UserID, req)
	suite.Require().NoError(err)
	suite.Equal("o2", third.OrderID)

	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrderByID_OwnerAllowed() {
	ctx := context.Background()
	clientID := uuid.NewString()
	order := &domain.Order{OrderID: uuid.NewString(), ClientID: clientID}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	got, err := suite.service.GetOrderByID(ctx, clientID, order.OrderID)

	suite.Require().NoError(err)
	suite.Equal(order, got)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

func (suite *OrderServiceTestSuite) TestGetOrderByID_StrangerForbidden() {
	ctx := context.Background()
	strangerID := uuid.NewString()
	order := &domain.Order{OrderID: uuid.NewString(), ClientID: uuid.NewString()}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, strangerID).
		Return(&domain.User{UserID: strangerID, Role: domain.RoleClient}, nil).Once()

	got, err := suite.service.GetOrderByID(ctx, strangerID, order.OrderID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *OrderServiceTestSuite) TestGetOrderByID_AdminAllowed() {
	ctx := context.Background()
	adminID := uuid.NewString()
	order := &domain.Order{OrderID: uuid.NewString(), ClientID: uuid.NewString()}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, Role: domain.RoleAdmin}, nil).Once()

	got, err := suite.service.GetOrderByID(ctx, adminID, order.OrderID)

	suite.Require().NoError(err)
	suite.Equal(order, got)
}

func (suite *OrderServiceTestSuite) TestAdvanceOrderStatus_NonAdminForbidden() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, clientID).
		Return(&domain.User{UserID: clientID, Role: domain.RoleClient}, nil).Once()

	order, err := suite.service.AdvanceOrderStatus(ctx, clientID, uuid.NewString(), dto.AdvanceStatusRequest{
		Status:   domain.StatusPickedUp,
		Location: "Bodega Bogotá",
	})

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "AdvanceOrderStatus")
}

func (suite *OrderServiceTestSuite) TestAdvanceOrderStatus_AdminSuccess() {
	ctx := context.Background()
	adminID := uuid.NewString()
	orderID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, Role: domain.RoleAdmin}, nil).Once()
	suite.mockOrderRepo.On("AdvanceOrderStatus", ctx, orderID, domain.StatusPickedUp, "Bodega Bogotá", mock.AnythingOfType("time.Time")).
		Return(&domain.Order{OrderID: orderID, Status: domain.StatusPickedUp}, nil).Once()

	order, err := suite.service.AdvanceOrderStatus(ctx, adminID, orderID, dto.AdvanceStatusRequest{
		Status:   domain.StatusPickedUp,
		Location: "Bodega Bogotá",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPickedUp, order.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAdvanceOrderStatus_InvalidTransition() {
	ctx := context.Background()
	adminID := uuid.NewString()
	orderID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, Role: domain.RoleAdmin}, nil).Once()
	suite.mockOrderRepo.On("AdvanceOrderStatus", ctx, orderID, domain.StatusDelivered, "Medellín", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	order, err := suite.service.AdvanceOrderStatus(ctx, adminID, orderID, dto.AdvanceStatusRequest{
		Status:   domain.StatusDelivered,
		Location: "Medellín",
	})

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *OrderServiceTestSuite) TestListOrders_EmptyIsNotNil() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockOrderRepo.On("ListOrdersByClient", ctx, clientID).Return(nil, nil).Once()

	orders, err := suite.service.ListOrders(ctx, clientID)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
