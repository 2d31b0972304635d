package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/service/records"
)

const plantingDateLayout = "2006-01-02"

// AlertHandler serves the alerts screen: reminders sorted by date, the
// harvest confirmation flow, and the harvest-date calculator.
type AlertHandler struct {
	records *records.Service
	logger  *zap.Logger
}

// NewAlertHandler constructs the HTTP handler adapter.
func NewAlertHandler(svc *records.Service, logger *zap.Logger) *AlertHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlertHandler{records: svc, logger: logger}
}

// List returns alerts ascending by date, flagging past-due ones.
func (h *AlertHandler) List(c *gin.Context) {
	alerts := h.records.ListAlerts(c.Request.Context())

	now := time.Now()
	past := 0
	for _, alert := range alerts {
		if alert.Past(now) {
			past++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts":    alerts,
		"pastCount": past,
	})
}

// Create schedules a reminder.
func (h *AlertHandler) Create(c *gin.Context) {
	var req models.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid alert payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, date and a valid type are required"})
		return
	}

	alert, err := h.records.CreateAlert(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed creating alert", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save alert"})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// Delete removes an alert. Unknown ids are a no-op and still return 204.
func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.records.DeleteAlert(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed deleting alert", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete alert"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ConfirmHarvest records the yield of a harvest alert as a production
// record and optionally removes the alert.
func (h *AlertHandler) ConfirmHarvest(c *gin.Context) {
	var req models.ConfirmHarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid harvest payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit and a positive amount are required"})
		return
	}

	result, err := h.records.ConfirmHarvest(c.Request.Context(), c.Param("id"), req)
	switch {
	case errors.Is(err, records.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	case errors.Is(err, records.ErrNotHarvestAlert):
		c.JSON(http.StatusConflict, gin.H{"error": "alert is not a harvest alert"})
		return
	case err != nil:
		h.logger.Error("failed confirming harvest", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record harvest"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HarvestDate projects a harvest date from a planting date plus the crop's
// cycle length in days.
func (h *AlertHandler) HarvestDate(c *gin.Context) {
	planting, err := time.Parse(plantingDateLayout, c.Query("planting"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planting must be YYYY-MM-DD"})
		return
	}

	days, err := strconv.Atoi(c.Query("cycleDays"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cycleDays must be a positive integer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"harvestDate": planting.AddDate(0, 0, days).Format(time.RFC3339),
	})
}
