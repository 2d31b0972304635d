package records

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agrogestor/backend/internal/domain/models"
	"github.com/agrogestor/backend/internal/repository/record"
)

// ErrAlertNotFound indicates the referenced alert does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// ErrItemNotFound indicates the referenced inventory item does not exist.
var ErrItemNotFound = errors.New("inventory item not found")

// ErrNotHarvestAlert indicates a harvest confirmation targeted an alert of
// a different type.
var ErrNotHarvestAlert = errors.New("alert is not a harvest alert")

// Service owns the five record collections: id assignment, per-collection
// insertion order, and the derived operations (task toggle, stock
// adjustment, harvest confirmation, one-time seeding).
//
// Reads degrade to an empty list when the store fails; writes surface
// their error to the caller.
type Service struct {
	store  record.Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires a record service over the given store.
func NewService(store record.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  NewID,
	}
}

// NewID produces a short collision-resistant identifier. Uniqueness is only
// required within a collection.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// --- Tasks ---

// ListTasks returns tasks in insertion order. Never fails: a read error is
// logged and an empty list returned.
func (s *Service) ListTasks(ctx context.Context) []models.Task {
	items, err := s.store.ReadTasks(ctx)
	if err != nil {
		s.logger.Warn("task read failed, returning empty list", zap.Error(err))
		return []models.Task{}
	}
	if items == nil {
		items = []models.Task{}
	}
	return items
}

// CreateTask appends a new pending task dated now.
func (s *Service) CreateTask(ctx context.Context, title string) (models.Task, error) {
	task := models.Task{
		ID:    s.newID(),
		Title: title,
		Date:  s.now(),
	}

	list := append(s.ListTasks(ctx), task)
	if err := s.store.WriteTasks(ctx, list); err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// ToggleTask flips a task's done state. Unknown ids are a silent no-op.
// Returns the resulting list.
func (s *Service) ToggleTask(ctx context.Context, id string) ([]models.Task, error) {
	list := s.ListTasks(ctx)
	for i := range list {
		if list[i].ID == id {
			list[i].IsDone = !list[i].IsDone
			if err := s.store.WriteTasks(ctx, list); err != nil {
				return nil, fmt.Errorf("toggle task %s: %w", id, err)
			}
			break
		}
	}
	return list, nil
}

// --- Transactions ---

// ListTransactions returns transactions newest first.
func (s *Service) ListTransactions(ctx context.Context) []models.Transaction {
	items, err := s.store.ReadTransactions(ctx)
	if err != nil {
		s.logger.Warn("transaction read failed, returning empty list", zap.Error(err))
		return []models.Transaction{}
	}
	if items == nil {
		items = []models.Transaction{}
	}
	return items
}

// CreateTransaction records a financial movement at the head of the list.
// Transactions are immutable afterwards.
func (s *Service) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	tx := models.Transaction{
		ID:          s.newID(),
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        date,
	}

	list := append([]models.Transaction{tx}, s.ListTransactions(ctx)...)
	if err := s.store.WriteTransactions(ctx, list); err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return tx, nil
}

// --- Inventory ---

// ListInventory returns inventory items in insertion order.
func (s *Service) ListInventory(ctx context.Context) []models.InventoryItem {
	items, err := s.store.ReadInventory(ctx)
	if err != nil {
		s.logger.Warn("inventory read failed, returning empty list", zap.Error(err))
		return []models.InventoryItem{}
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	return items
}

// CreateInventoryItem appends a new stock item.
func (s *Service) CreateInventoryItem(ctx context.Context, req models.CreateInventoryItemRequest) (models.InventoryItem, error) {
	item := models.InventoryItem{
		ID:           s.newID(),
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
	}

	list := append(s.ListInventory(ctx), item)
	if err := s.store.WriteInventory(ctx, list); err != nil {
		return models.InventoryItem{}, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

// UpdateInventoryItem replaces the stored item with the same id. Unknown
// ids are a silent no-op.
func (s *Service) UpdateInventoryItem(ctx context.Context, item models.InventoryItem) error {
	list := s.ListInventory(ctx)
	for i := range list {
		if list[i].ID == item.ID {
			list[i] = item
			if err := s.store.WriteInventory(ctx, list); err != nil {
				return fmt.Errorf("update inventory item %s: %w", item.ID, err)
			}
			return nil
		}
	}
	return nil
}

// DeleteInventoryItem removes an item by id. Unknown ids are a no-op.
func (s *Service) DeleteInventoryItem(ctx context.Context, id string) error {
	list := s.ListInventory(ctx)
	kept := list[:0]
	for _, item := range list {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	if err := s.store.WriteInventory(ctx, kept); err != nil {
		return fmt.Errorf("delete inventory item %s: %w", id, err)
	}
	return nil
}

// AdjustStock moves an item's quantity by delta, clamped at zero.
func (s *Service) AdjustStock(ctx context.Context, id string, delta float64) (models.InventoryItem, error) {
	list := s.ListInventory(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		quantity := list[i].Quantity + delta
		if quantity < 0 {
			quantity = 0
		}
		list[i].Quantity = quantity
		if err := s.store.WriteInventory(ctx, list); err != nil {
			return models.InventoryItem{}, fmt.Errorf("adjust stock for %s: %w", id, err)
		}
		return list[i], nil
	}
	return models.InventoryItem{}, ErrItemNotFound
}

// --- Production ---

// ListProduction returns production records newest first.
func (s *Service) ListProduction(ctx context.Context) []models.ProductionRecord {
	items, err := s.store.ReadProduction(ctx)
	if err != nil {
		s.logger.Warn("production read failed, returning empty list", zap.Error(err))
		return []models.ProductionRecord{}
	}
	if items == nil {
		items = []models.ProductionRecord{}
	}
	return items
}

// CreateProduction records a yield at the head of the list. Records are
// immutable afterwards.
func (s *Service) CreateProduction(ctx context.Context, req models.CreateProductionRequest) (models.ProductionRecord, error) {
	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	rec := models.ProductionRecord{
		ID:     s.newID(),
		Name:   req.Name,
		Type:   req.Type,
		Amount: req.Amount,
		Unit:   req.Unit,
		Date:   date,
		Notes:  req.Notes,
	}

	list := append([]models.ProductionRecord{rec}, s.ListProduction(ctx)...)
	if err := s.store.WriteProduction(ctx, list); err != nil {
		return models.ProductionRecord{}, fmt.Errorf("create production record: %w", err)
	}
	return rec, nil
}

// --- Alerts ---

// ListAlerts returns alerts in ascending date order.
func (s *Service) ListAlerts(ctx context.Context) []models.Alert {
	items, err := s.store.ReadAlerts(ctx)
	if err != nil {
		s.logger.Warn("alert read failed, returning empty list", zap.Error(err))
		return []models.Alert{}
	}
	if items == nil {
		items = []models.Alert{}
	}
	return items
}

// CreateAlert inserts a reminder and re-sorts the list ascending by date.
func (s *Service) CreateAlert(ctx context.Context, req models.CreateAlertRequest) (models.Alert, error) {
	alert := models.Alert{
		ID:           s.newID(),
		Title:        req.Title,
		Date:         req.Date,
		Type:         req.Type,
		NotifySystem: req.NotifySystem,
	}

	list := append(s.ListAlerts(ctx), alert)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.Before(list[j].Date)
	})

	if err := s.store.WriteAlerts(ctx, list); err != nil {
		return models.Alert{}, fmt.Errorf("create alert: %w", err)
	}
	return alert, nil
}

// DeleteAlert removes an alert by id. Unknown ids are a no-op.
func (s *Service) DeleteAlert(ctx context.Context, id string) error {
	list := s.ListAlerts(ctx)
	kept := list[:0]
	for _, alert := range list {
		if alert.ID != id {
			kept = append(kept, alert)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	if err := s.store.WriteAlerts(ctx, kept); err != nil {
		return fmt.Errorf("delete alert %s: %w", id, err)
	}
	return nil
}
