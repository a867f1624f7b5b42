package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jslogistics/jsl-backend/internal/apperrors"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
	"github.com/jslogistics/jsl-backend/internal/dto"
	"github.com/jslogistics/jsl-backend/internal/middleware"
)

// financeHandler handles HTTP requests for the account ledger.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeService: fs}
}

// registerFinanceRoutes registers all ledger-related routes.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	finance := rg.Group("/finance")
	{
		finance.GET("/summary", h.getSummary)
		finance.GET("/transactions", h.listTransactions)
		finance.POST("/payment", h.registerPayment)
	}
}

// getSummary godoc
// @Summary Account financial summary
// @Description Returns the derived balance, credit standing, order counts and recent transactions.
// @Tags finance
// @Produce json
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load summary"
// @Security BearerAuth
// @Router /finance/summary [get]
func (h *financeHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.financeService.GetSummary(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to build finance summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary))
}

// listTransactions godoc
// @Summary List account transactions
// @Description Returns the client's full transaction history, most recent first.
// @Tags finance
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /finance/transactions [get]
func (h *financeHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, err := h.financeService.ListTransactions(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// registerPayment godoc
// @Summary Register a payment
// @Description Appends a payment to the ledger and settles unpaid charges oldest first.
// @Tags finance
// @Accept json
// @Produce json
// @Param payment body dto.RegisterPaymentRequest true "Payment amount and reference"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to register payment"
// @Security BearerAuth
// @Router /finance/payment [post]
func (h *financeHandler) registerPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	clientID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.financeService.RegisterPayment(c.Request.Context(), clientID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register payment"})
		return
	}

	logger.Info("Payment registered",
		slog.String("transaction_id", payment.TransactionID),
		slog.String("amount", payment.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(payment))
}
