package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
	"github.com/jslogistics/jsl-backend/internal/dto"
	"github.com/jslogistics/jsl-backend/internal/handlers"
	"github.com/jslogistics/jsl-backend/internal/platform/config"
	"github.com/jslogistics/jsl-backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, clientID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, requesterID, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, requesterID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, clientID string) ([]domain.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) AdvanceOrderStatus(ctx context.Context, requesterID, orderID string, req dto.AdvanceStatusRequest) (*domain.Order, error) {
	args := m.Called(ctx, requesterID, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) Track(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

var _ portssvc.TrackingSvcFacade = (*MockTrackingService)(nil)

type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) GetSummary(ctx context.Context, clientID string) (*domain.FinanceSummary, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceSummary), args.Error(1)
}

func (m *MockFinanceService) GetBalance(ctx context.Context, clientID string) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFinanceService) ListTransactions(ctx context.Context, clientID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockFinanceService) RegisterPayment(ctx context.Context, clientID string, req dto.RegisterPaymentRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.FinanceSvcFacade = (*MockFinanceService)(nil)

// --- Test Suite ---

type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockUser     *MockUserService
	mockOrder    *MockOrderService
	mockTracking *MockTrackingService
	mockFinance  *MockFinanceService
	jwtSecret    string
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUser = new(MockUserService)
	suite.mockOrder = new(MockOrderService)
	suite.mockTracking = new(MockTrackingService)
	suite.mockFinance = new(MockFinanceService)

	cfg := &config.Config{
		Port:              "8080",
		IsProduction:      true, // keeps swagger off the test router
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "jsl-test",
		TrackingRateLimit: "1000-M",
		LoginRateLimit:    "1000-M",
	}

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		User:     suite.mockUser,
		Order:    suite.mockOrder,
		Tracking: suite.mockTracking,
		Finance:  suite.mockFinance,
	})
}

func (suite *HandlersTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "jsl-test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlersTestSuite) doJSON(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func (suite *HandlersTestSuite) TestLogin_Success() {
	userID := uuid.NewString()
	user := &domain.User{
		UserID:      userID,
		Name:        "Carlos Mendoza",
		Email:       "carlos@andina.co",
		CreditLimit: decimal.NewFromInt(1_000_000),
		Role:        domain.RoleClient,
		IsActive:    true,
	}

	suite.mockUser.On("AuthenticateUser", mock.Anything, "carlos@andina.co", "s3cret-password").
		Return(user, nil).Once()
	suite.mockFinance.On("GetBalance", mock.Anything, userID).
		Return(decimal.NewFromInt(-120_000), nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "carlos@andina.co",
		Password: "s3cret-password",
	}, "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal(userID, resp.User.UserID)
	suite.True(resp.User.Balance.Equal(decimal.NewFromInt(-120_000)))
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "carlos@andina.co", "wrong").
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "carlos@andina.co",
		Password: "wrong",
	}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestRegister_Success() {
	userID := uuid.NewString()
	user := &domain.User{
		UserID:      userID,
		Name:        "Carlos Mendoza",
		Email:       "carlos@andina.co",
		CreditLimit: decimal.NewFromInt(1_000_000),
		Role:        domain.RoleClient,
		IsActive:    true,
	}
	suite.mockUser.On("RegisterUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(user, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Carlos Mendoza",
		Company:  "Importadora Andina SAS",
		Email:    "carlos@andina.co",
		Phone:    "+57 310 555 0101",
		Address:  "Calle 72 #10-34, Bogotá",
		NIT:      "900123456-7",
		Password: "s3cret-password",
	}, "")

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal(userID, resp.User.UserID)
	// A fresh ledger means a zero balance with no lookup.
	suite.True(resp.User.Balance.IsZero())
	suite.mockFinance.AssertNotCalled(suite.T(), "GetBalance", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRegister_DuplicateEmail() {
	suite.mockUser.On("RegisterUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Carlos Mendoza",
		Company:  "Importadora Andina SAS",
		Email:    "carlos@andina.co",
		Phone:    "+57 310 555 0101",
		Address:  "Calle 72 #10-34, Bogotá",
		NIT:      "900123456-7",
		Password: "s3cret-password",
	}, "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestMe_RequiresToken() {
	w := suite.doJSON(http.MethodGet, "/api/v1/auth/me", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Orders ---

func (suite *HandlersTestSuite) TestCreateOrder_Success() {
	clientID := uuid.NewString()
	created := &domain.Order{
		OrderID:        uuid.NewString(),
		ClientID:       clientID,
		TrackingNumber: "JSL-2026-0001",
		Status:         domain.StatusCreated,
	}

	suite.mockOrder.On("CreateOrder", mock.Anything, clientID, mock.MatchedBy(func(req dto.CreateOrderRequest) bool {
		return req.RecipientCity == "Medellín" && req.ServiceType == domain.ServiceExpress
	})).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/orders", dto.CreateOrderRequest{
		RecipientName:      "Ferretería El Tornillo",
		RecipientContact:   "Luisa Rojas",
		RecipientPhone:     "+57 312 555 0202",
		RecipientAddress:   "Carrera 45 #18-20",
		RecipientCity:      "Medellín",
		PackageDescription: "Repuestos industriales",
		WeightKg:           decimal.NewFromInt(2),
		DimensionsCm:       "30x20x15",
		ServiceType:        domain.ServiceExpress,
	}, suite.generateTestToken(clientID))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JSL-2026-0001", resp.TrackingNumber)
	suite.mockOrder.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateOrder_CreditLimitExceeded() {
	clientID := uuid.NewString()

	suite.mockOrder.On("CreateOrder", mock.Anything, clientID, mock.AnythingOfType("dto.CreateOrderRequest")).
		Return(nil, apperrors.ErrCreditLimitExceeded).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/orders", dto.CreateOrderRequest{
		RecipientName:      "Ferretería El Tornillo",
		RecipientContact:   "Luisa Rojas",
		RecipientPhone:     "+57 312 555 0202",
		RecipientAddress:   "Carrera 45 #18-20",
		RecipientCity:      "Medellín",
		PackageDescription: "Repuestos industriales",
		WeightKg:           decimal.NewFromInt(120),
		DimensionsCm:       "100x80x60",
		ServiceType:        domain.ServiceInternational,
	}, suite.generateTestToken(clientID))

	suite.Equal(http.StatusPaymentRequired, w.Code)
}

func (suite *HandlersTestSuite) TestCreateOrder_MissingFields() {
	clientID := uuid.NewString()

	w := suite.doJSON(http.MethodPost, "/api/v1/orders", map[string]any{
		"recipientName": "Ferretería El Tornillo",
	}, suite.generateTestToken(clientID))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrder.AssertNotCalled(suite.T(), "CreateOrder")
}

func (suite *HandlersTestSuite) TestAdvanceStatus_ForbiddenForClient() {
	clientID := uuid.NewString()
	orderID := uuid.NewString()

	suite.mockOrder.On("AdvanceOrderStatus", mock.Anything, clientID, orderID, mock.AnythingOfType("dto.AdvanceStatusRequest")).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doJSON(http.MethodPatch, "/api/v1/orders/"+orderID+"/status", dto.AdvanceStatusRequest{
		Status:   domain.StatusPickedUp,
		Location: "Bodega Bogotá",
	}, suite.generateTestToken(clientID))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestAdvanceStatus_InvalidTransitionConflicts() {
	adminID := uuid.NewString()
	orderID := uuid.NewString()

	suite.mockOrder.On("AdvanceOrderStatus", mock.Anything, adminID, orderID, mock.AnythingOfType("dto.AdvanceStatusRequest")).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	w := suite.doJSON(http.MethodPatch, "/api/v1/orders/"+orderID+"/status", dto.AdvanceStatusRequest{
		Status:   domain.StatusDelivered,
		Location: "Medellín",
	}, suite.generateTestToken(adminID))

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Tracking ---

func (suite *HandlersTestSuite) TestTrack_PublicAndFiltered() {
	now := time.Now().UTC()
	order := &domain.Order{
		OrderID:         uuid.NewString(),
		ClientID:        uuid.NewString(),
		TrackingNumber:  "JSL-2026-0042",
		SenderCompany:   "Importadora Andina SAS",
		RecipientName:   "Ferretería El Tornillo",
		RecipientCity:   "Medellín",
		ServiceType:     domain.ServiceStandard,
		ShippingCostCOP: decimal.NewFromInt(38_000),
		Status:          domain.StatusInTransit,
		Timeline:        domain.NewTimeline("Calle 72 #10-34, Bogotá", now),
	}

	suite.mockTracking.On("Track", mock.Anything, "JSL-2026-0042").Return(order, nil).Once()

	// No Authorization header: the endpoint is public.
	w := suite.doJSON(http.MethodGet, "/api/v1/track/JSL-2026-0042", nil, "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TrackingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JSL-2026-0042", resp.TrackingNumber)
	suite.Len(resp.Timeline, 5)

	// The public payload must leak nothing about the account or billing.
	body := w.Body.String()
	suite.NotContains(body, "clientId")
	suite.NotContains(body, "shippingCostCOP")
	suite.NotContains(body, "balance")
	suite.NotContains(body, "creditLimit")
	suite.NotContains(body, order.ClientID)
}

func (suite *HandlersTestSuite) TestTrack_NotFound() {
	suite.mockTracking.On("Track", mock.Anything, "JSL-2026-9999").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/track/JSL-2026-9999", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Finance ---

func (suite *HandlersTestSuite) TestGetSummary_Success() {
	clientID := uuid.NewString()
	summary := &domain.FinanceSummary{
		Balance:            decimal.NewFromInt(-480_000),
		TotalCharged:       decimal.NewFromInt(480_000),
		TotalPaid:          decimal.Zero,
		PendingCharges:     decimal.NewFromInt(480_000),
		CreditLimit:        decimal.NewFromInt(500_000),
		AvailableCredit:    decimal.NewFromInt(20_000),
		TotalOrders:        1,
		ActiveOrders:       1,
		RecentTransactions: []domain.Transaction{},
	}

	suite.mockFinance.On("GetSummary", mock.Anything, clientID).Return(summary, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/finance/summary", nil, suite.generateTestToken(clientID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.FinanceSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.AvailableCredit.Equal(decimal.NewFromInt(20_000)))
	suite.Equal(1, resp.TotalOrders)
}

func (suite *HandlersTestSuite) TestRegisterPayment_InvalidAmount() {
	clientID := uuid.NewString()

	suite.mockFinance.On("RegisterPayment", mock.Anything, clientID, mock.AnythingOfType("dto.RegisterPaymentRequest")).
		Return(nil, apperrors.ErrInvalidAmount).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/finance/payment", dto.RegisterPaymentRequest{
		Amount:    decimal.NewFromInt(-5_000),
		Reference: "CONS-0000",
	}, suite.generateTestToken(clientID))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestFinance_RequiresToken() {
	w := suite.doJSON(http.MethodGet, "/api/v1/finance/transactions", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
