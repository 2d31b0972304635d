package records

import (
	"context"

	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
)

// HarvestResult is the outcome of a harvest confirmation.
type HarvestResult struct {
	Production   models.ProductionRecord `json:"production"`
	AlertRemoved bool                    `json:"alertRemoved"`
}

// ConfirmHarvest turns a harvest alert into a crop production record named
// after the alert, optionally removing the alert afterwards. The two writes
// are not transactional: if the removal fails the alert simply stays next
// to the new record.
func (s *Service) ConfirmHarvest(ctx context.Context, alertID string, req models.ConfirmHarvestRequest) (HarvestResult, error) {
	var alert models.Alert
	found := false
	for _, a := range s.ListAlerts(ctx) {
		if a.ID == alertID {
			alert = a
			found = true
			break
		}
	}
	if !found {
		return HarvestResult{}, ErrAlertNotFound
	}
	if alert.Type != models.AlertHarvest {
		return HarvestResult{}, ErrNotHarvestAlert
	}

	rec, err := s.CreateProduction(ctx, models.CreateProductionRequest{
		Name:   alert.Title,
		Type:   models.ProductionCrop,
		Amount: req.Amount,
		Unit:   req.Unit,
		Date:   s.now(),
	})
	if err != nil {
		return HarvestResult{}, err
	}

	result := HarvestResult{Production: rec}
	if req.RemoveAlert {
		if err := s.DeleteAlert(ctx, alert.ID); err != nil {
			s.logger.Warn("harvest alert removal failed, alert kept",
				zap.String("alert_id", alert.ID), zap.Error(err))
			return result, nil
		}
		result.AlertRemoved = true
	}
	return result, nil
}
