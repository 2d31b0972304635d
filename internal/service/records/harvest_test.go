package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/repository/record"
)

func TestConfirmHarvest_CreatesRecordAndRemovesAlert(t *testing.T) {
	store := record.NewMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	alert, err := svc.CreateAlert(ctx, models.CreateAlertRequest{
		Title: "Milho", Date: time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC), Type: models.AlertHarvest,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.ConfirmHarvest(ctx, alert.ID, models.ConfirmHarvestRequest{
		Amount: 30, Unit: "sc", RemoveAlert: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Production.Name != "Milho" {
		t.Fatalf("expected record named after alert, got %q", result.Production.Name)
	}
	if result.Production.Type != models.ProductionCrop {
		t.Fatalf("expected CROP record, got %s", result.Production.Type)
	}
	if result.Production.Amount != 30 || result.Production.Unit != "sc" {
		t.Fatalf("harvest fields not preserved: %+v", result.Production)
	}
	if !result.AlertRemoved {
		t.Fatal("expected alert removed")
	}
	if len(svc.ListAlerts(ctx)) != 0 {
		t.Fatal("alert still present after removal")
	}
	if len(svc.ListProduction(ctx)) != 1 {
		t.Fatal("production record missing")
	}
}

func TestConfirmHarvest_KeepingAlertLeavesBothRecords(t *testing.T) {
	store := record.NewMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	alert, err := svc.CreateAlert(ctx, models.CreateAlertRequest{
		Title: "Soja", Date: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC), Type: models.AlertHarvest,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.ConfirmHarvest(ctx, alert.ID, models.ConfirmHarvestRequest{Amount: 80, Unit: "sc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AlertRemoved {
		t.Fatal("alert must be kept unless removal was requested")
	}
	if len(svc.ListAlerts(ctx)) != 1 || len(svc.ListProduction(ctx)) != 1 {
		t.Fatal("expected alert and production record side by side")
	}
}

func TestConfirmHarvest_RejectsUnknownAndWrongType(t *testing.T) {
	store := record.NewMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.ConfirmHarvest(ctx, "nope", models.ConfirmHarvestRequest{Amount: 1, Unit: "sc"}); !errors.Is(err, ErrAlertNotFound) {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}

	alert, err := svc.CreateAlert(ctx, models.CreateAlertRequest{
		Title: "Vacinação", Date: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC), Type: models.AlertVaccination,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ConfirmHarvest(ctx, alert.ID, models.ConfirmHarvestRequest{Amount: 1, Unit: "sc"}); !errors.Is(err, ErrNotHarvestAlert) {
		t.Fatalf("expected ErrNotHarvestAlert, got %v", err)
	}
}
