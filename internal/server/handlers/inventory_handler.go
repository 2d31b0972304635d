package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/service/records"
)

// InventoryHandler serves the inventory screen.
type InventoryHandler struct {
	records *records.Service
	logger  *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(svc *records.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{records: svc, logger: logger}
}

// List returns the items in insertion order plus the low-stock count.
func (h *InventoryHandler) List(c *gin.Context) {
	items := h.records.ListInventory(c.Request.Context())

	lowStock := 0
	for _, item := range items {
		if item.LowStock() {
			lowStock++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         items,
		"lowStockCount": lowStock,
	})
}

// Create registers a new stock item.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, unit and non-negative quantities are required"})
		return
	}

	item, err := h.records.CreateInventoryItem(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed creating inventory item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update replaces every field of an existing item.
func (h *InventoryHandler) Update(c *gin.Context) {
	var req models.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, unit and non-negative quantities are required"})
		return
	}

	item := models.InventoryItem{
		ID:           c.Param("id"),
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
	}
	if err := h.records.UpdateInventoryItem(c.Request.Context(), item); err != nil {
		h.logger.Error("failed updating inventory item", zap.String("id", item.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete removes an item. Unknown ids are a no-op and still return 204.
func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.records.DeleteInventoryItem(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed deleting inventory item", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Adjust moves an item's quantity by a signed delta, clamped at zero.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid adjust payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta must be a number"})
		return
	}

	item, err := h.records.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if errors.Is(err, records.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed adjusting stock", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}

	c.JSON(http.StatusOK, item)
}
