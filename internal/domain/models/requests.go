package models

import "time"

// CreateTaskRequest is the payload for adding a checklist task.
type CreateTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateTransactionRequest is the payload for recording a financial movement.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      float64         `json:"amount" binding:"required,gt=0"`
	Type        TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string          `json:"category" binding:"required"`
	Date        time.Time       `json:"date"`
}

// CreateInventoryItemRequest is the payload for registering a stock item.
type CreateInventoryItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"gte=0"`
	Unit         string  `json:"unit" binding:"required"`
	MinThreshold float64 `json:"minThreshold" binding:"gte=0"`
}

// UpdateInventoryItemRequest replaces every field of an existing item.
type UpdateInventoryItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"gte=0"`
	Unit         string  `json:"unit" binding:"required"`
	MinThreshold float64 `json:"minThreshold" binding:"gte=0"`
}

// AdjustStockRequest moves an item's quantity by a signed delta.
type AdjustStockRequest struct {
	Delta float64 `json:"delta"`
}

// CreateProductionRequest is the payload for recording a yield.
type CreateProductionRequest struct {
	Name   string         `json:"name" binding:"required"`
	Type   ProductionType `json:"type" binding:"required,oneof=CROP ANIMAL"`
	Amount float64        `json:"amount" binding:"required,gt=0"`
	Unit   string         `json:"unit" binding:"required"`
	Date   time.Time      `json:"date"`
	Notes  string         `json:"notes"`
}

// CreateAlertRequest is the payload for scheduling a reminder.
type CreateAlertRequest struct {
	Title        string    `json:"title" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
	Type         AlertType `json:"type" binding:"required,oneof=GENERAL FERTILIZATION HARVEST VACCINATION WEATHER"`
	NotifySystem bool      `json:"notifySystem"`
}

// ConfirmHarvestRequest turns a harvest alert into a production record.
type ConfirmHarvestRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	RemoveAlert bool    `json:"removeAlert"`
}
