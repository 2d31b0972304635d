package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	repo "github.com/agrogestor/backend/internal/repository/sheets"
	"github.com/agrogestor/backend/pkg/clients/notify"
)

const (
	dateLayout        = "2006-01-02"
	summaryWriteRange = "Summary!A:H"
)

// RecordSource is the slice of the record store the reporting service reads.
type RecordSource interface {
	ListTransactions(ctx context.Context) []models.Transaction
	ListProduction(ctx context.Context) []models.ProductionRecord
	ListInventory(ctx context.Context) []models.InventoryItem
}

// Service assembles periodic farm summaries and exports them. Both export
// targets are optional; a nil sheets repository or notifier disables that
// output.
type Service struct {
	records  RecordSource
	sheets   repo.Repository
	notifier notify.Client
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(records RecordSource, sheets repo.Repository, notifier notify.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		records:  records,
		sheets:   sheets,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// WeeklySummary aggregates the seven days ending at ref.
func (s *Service) WeeklySummary(ctx context.Context, ref time.Time) models.WeeklySummary {
	start := ref.AddDate(0, 0, -7)
	summary := models.WeeklySummary{WeekStart: start, WeekEnd: ref}

	for _, tx := range s.records.ListTransactions(ctx) {
		if tx.Date.Before(start) || tx.Date.After(ref) {
			continue
		}
		switch tx.Type {
		case models.TransactionIncome:
			summary.Income += tx.Amount
		case models.TransactionExpense:
			summary.Expense += tx.Amount
		}
	}
	summary.Net = summary.Income - summary.Expense

	for _, rec := range s.records.ListProduction(ctx) {
		if rec.Date.Before(start) || rec.Date.After(ref) {
			continue
		}
		switch rec.Type {
		case models.ProductionCrop:
			summary.CropRecords++
		case models.ProductionAnimal:
			summary.AnimalRecords++
		}
	}

	for _, item := range s.records.ListInventory(ctx) {
		if item.LowStock() {
			summary.LowStockItems = append(summary.LowStockItems, item.Name)
		}
	}

	return summary
}

// PublishWeeklyReport builds the summary for the week ending now, appends a
// row to the spreadsheet, and pushes the text to the notifier.
func (s *Service) PublishWeeklyReport(ctx context.Context) error {
	summary := s.WeeklySummary(ctx, s.now())
	text := FormatSummary(summary)

	if s.sheets != nil {
		row := []interface{}{
			summary.WeekStart.Format(dateLayout),
			summary.WeekEnd.Format(dateLayout),
			summary.Income,
			summary.Expense,
			summary.Net,
			summary.CropRecords,
			summary.AnimalRecords,
			strings.Join(summary.LowStockItems, ", "),
		}
		if err := s.sheets.AppendRow(ctx, summaryWriteRange, row); err != nil {
			return fmt.Errorf("export weekly summary: %w", err)
		}
	} else {
		s.logger.Info("sheets export disabled, weekly summary not exported")
	}

	if s.notifier != nil {
		n := notify.Notification{Title: "Weekly farm report", Message: text}
		if err := s.notifier.Send(ctx, n); err != nil {
			return fmt.Errorf("send weekly report: %w", err)
		}
	} else {
		s.logger.Info("notifier disabled, weekly summary logged only", zap.String("summary", text))
	}

	return nil
}

// FormatSummary renders the summary as a short plain-text report.
func FormatSummary(s models.WeeklySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Week %s to %s\n", s.WeekStart.Format(dateLayout), s.WeekEnd.Format(dateLayout))
	fmt.Fprintf(&b, "Income: %.2f | Expense: %.2f | Net: %.2f\n", s.Income, s.Expense, s.Net)
	fmt.Fprintf(&b, "Production: %d crop, %d animal records\n", s.CropRecords, s.AnimalRecords)
	if len(s.LowStockItems) == 0 {
		b.WriteString("Low stock: none")
	} else {
		fmt.Fprintf(&b, "Low stock: %s", strings.Join(s.LowStockItems, ", "))
	}
	return b.String()
}
