package record

import (
	"context"
	"sync"

	"github.com/agrogestor/backend/internal/domain/models"
)

// MemoryStore is an in-memory Store used in tests. Lists are copied on
// read and write so stored state never aliases caller slices. ReadErr and
// WriteErr, when set, force the corresponding operations to fail.
type MemoryStore struct {
	mu           sync.Mutex
	tasks        []models.Task
	transactions []models.Transaction
	inventory    []models.InventoryItem
	production   []models.ProductionRecord
	alerts       []models.Alert
	initialized  bool

	ReadErr  error
	WriteErr error

	// WriteCount increments on every successful list write.
	WriteCount int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func copySlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func (m *MemoryStore) writeMem(assign func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	assign()
	m.WriteCount++
	return nil
}

func (m *MemoryStore) ReadTasks(context.Context) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return copySlice(m.tasks), nil
}

func (m *MemoryStore) WriteTasks(_ context.Context, items []models.Task) error {
	return m.writeMem(func() { m.tasks = copySlice(items) })
}

func (m *MemoryStore) ReadTransactions(context.Context) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return copySlice(m.transactions), nil
}

func (m *MemoryStore) WriteTransactions(_ context.Context, items []models.Transaction) error {
	return m.writeMem(func() { m.transactions = copySlice(items) })
}

func (m *MemoryStore) ReadInventory(context.Context) ([]models.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return copySlice(m.inventory), nil
}

func (m *MemoryStore) WriteInventory(_ context.Context, items []models.InventoryItem) error {
	return m.writeMem(func() { m.inventory = copySlice(items) })
}

func (m *MemoryStore) ReadProduction(context.Context) ([]models.ProductionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return copySlice(m.production), nil
}

func (m *MemoryStore) WriteProduction(_ context.Context, items []models.ProductionRecord) error {
	return m.writeMem(func() { m.production = copySlice(items) })
}

func (m *MemoryStore) ReadAlerts(context.Context) ([]models.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return copySlice(m.alerts), nil
}

func (m *MemoryStore) WriteAlerts(_ context.Context, items []models.Alert) error {
	return m.writeMem(func() { m.alerts = copySlice(items) })
}

func (m *MemoryStore) Initialized(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return false, m.ReadErr
	}
	return m.initialized, nil
}

func (m *MemoryStore) MarkInitialized(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.initialized = true
	return nil
}
