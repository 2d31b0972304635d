package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/service/records"
)

// FinanceHandler serves the finance screen. Transactions are append-only;
// there is no update or delete route.
type FinanceHandler struct {
	records *records.Service
	logger  *zap.Logger
}

// NewFinanceHandler constructs the HTTP handler adapter.
func NewFinanceHandler(svc *records.Service, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{records: svc, logger: logger}
}

// List returns transactions newest first together with the running totals.
func (h *FinanceHandler) List(c *gin.Context) {
	transactions := h.records.ListTransactions(c.Request.Context())

	var income, expense float64
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionIncome:
			income += tx.Amount
		case models.TransactionExpense:
			expense += tx.Amount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"income":       income,
		"expense":      expense,
		"balance":      income - expense,
	})
}

// Create records a new transaction.
func (h *FinanceHandler) Create(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid transaction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "description, category, a positive amount and a valid type are required"})
		return
	}

	tx, err := h.records.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed creating transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save transaction"})
		return
	}

	c.JSON(http.StatusCreated, tx)
}
