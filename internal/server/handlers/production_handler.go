package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/service/records"
)

// ProductionHandler serves the production screen. Records are append-only.
type ProductionHandler struct {
	records *records.Service
	logger  *zap.Logger
}

// NewProductionHandler constructs the HTTP handler adapter.
func NewProductionHandler(svc *records.Service, logger *zap.Logger) *ProductionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionHandler{records: svc, logger: logger}
}

// List returns records newest first with per-type counts.
func (h *ProductionHandler) List(c *gin.Context) {
	list := h.records.ListProduction(c.Request.Context())

	var crop, animal int
	for _, rec := range list {
		switch rec.Type {
		case models.ProductionCrop:
			crop++
		case models.ProductionAnimal:
			animal++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"records":       list,
		"cropRecords":   crop,
		"animalRecords": animal,
	})
}

// Create records a new yield entry.
func (h *ProductionHandler) Create(c *gin.Context) {
	var req models.CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid production payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, unit, a positive amount and a valid type are required"})
		return
	}

	rec, err := h.records.CreateProduction(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed creating production record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}
