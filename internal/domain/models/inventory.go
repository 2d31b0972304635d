package models

// InventoryItem tracks the stock level of a supply (feed, fertilizer, seed...).
type InventoryItem struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Quantity     float64 `bson:"quantity" json:"quantity"`
	Unit         string  `bson:"unit" json:"unit"`
	MinThreshold float64 `bson:"min_threshold" json:"minThreshold"`
}

// LowStock reports whether the item sits at or below its minimum threshold.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinThreshold
}
