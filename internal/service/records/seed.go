package records

import (
	"context"
	"fmt"
	"time"

	"github.com/agrogestor/backend/internal/domain/models"
)

// EnsureSeeded populates the sample data on the first run. The persisted
// flag makes the call idempotent; once set, seeding never runs again.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	initialized, err := s.store.Initialized(ctx)
	if err != nil {
		return fmt.Errorf("check seed flag: %w", err)
	}
	if initialized {
		return nil
	}

	now := s.now()

	tasks := []models.Task{
		{ID: s.newID(), Title: "Verificar cerca do pasto", Date: now},
		{ID: s.newID(), Title: "Comprar vacina aftosa", Date: now},
	}
	inventory := []models.InventoryItem{
		{ID: s.newID(), Name: "Milho (Saca)", Quantity: 50, Unit: "sc", MinThreshold: 10},
		{ID: s.newID(), Name: "Adubo NPK", Quantity: 5, Unit: "kg", MinThreshold: 20},
	}
	alerts := []models.Alert{
		{ID: s.newID(), Title: "Vacinação Aftosa", Date: now.Add(24 * time.Hour), Type: models.AlertVaccination, NotifySystem: true},
	}

	if err := s.store.WriteTasks(ctx, tasks); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if err := s.store.WriteInventory(ctx, inventory); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}
	if err := s.store.WriteAlerts(ctx, alerts); err != nil {
		return fmt.Errorf("seed alerts: %w", err)
	}
	if err := s.store.WriteTransactions(ctx, []models.Transaction{}); err != nil {
		return fmt.Errorf("seed transactions: %w", err)
	}
	if err := s.store.WriteProduction(ctx, []models.ProductionRecord{}); err != nil {
		return fmt.Errorf("seed production: %w", err)
	}
	if err := s.store.MarkInitialized(ctx); err != nil {
		return fmt.Errorf("mark seeded: %w", err)
	}

	s.logger.Info("seeded initial sample data")
	return nil
}
