package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/service/records"
)

// DashboardHandler serves the dashboard screen: the task checklist plus the
// financial summary.
type DashboardHandler struct {
	records *records.Service
	logger  *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(svc *records.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{records: svc, logger: logger}
}

// Summary returns pending task counts and the income/expense balance.
func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	summary := models.DashboardSummary{}
	for _, task := range h.records.ListTasks(ctx) {
		summary.TotalTasks++
		if !task.IsDone {
			summary.PendingTasks++
		}
	}
	for _, tx := range h.records.ListTransactions(ctx) {
		switch tx.Type {
		case models.TransactionIncome:
			summary.Income += tx.Amount
		case models.TransactionExpense:
			summary.Expense += tx.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense

	c.JSON(http.StatusOK, summary)
}

// ListTasks returns the checklist in insertion order.
func (h *DashboardHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.records.ListTasks(c.Request.Context())})
}

// CreateTask adds a pending task.
func (h *DashboardHandler) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid task payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	task, err := h.records.CreateTask(c.Request.Context(), req.Title)
	if err != nil {
		h.logger.Error("failed creating task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ToggleTask flips a task's done state and returns the resulting list.
func (h *DashboardHandler) ToggleTask(c *gin.Context) {
	list, err := h.records.ToggleTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed toggling task", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": list})
}
