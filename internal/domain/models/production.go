package models

import "time"

// ProductionType classifies a production record as crop or animal output.
type ProductionType string

const (
	ProductionCrop   ProductionType = "CROP"
	ProductionAnimal ProductionType = "ANIMAL"
)

// ProductionRecord captures a yield entry, e.g. "Milho" 30 sc or "Leite" 120 l.
// Records are immutable once created.
type ProductionRecord struct {
	ID     string         `bson:"id" json:"id"`
	Name   string         `bson:"name" json:"name"`
	Type   ProductionType `bson:"type" json:"type"`
	Amount float64        `bson:"amount" json:"amount"`
	Unit   string         `bson:"unit" json:"unit"`
	Date   time.Time      `bson:"date" json:"date"`
	Notes  string         `bson:"notes,omitempty" json:"notes,omitempty"`
}
