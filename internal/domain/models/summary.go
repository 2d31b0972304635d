package models

import "time"

// DashboardSummary is the aggregate shown on the dashboard screen.
type DashboardSummary struct {
	PendingTasks int     `json:"pendingTasks"`
	TotalTasks   int     `json:"totalTasks"`
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
	Balance      float64 `json:"balance"`
}

// WeeklySummary aggregates one week of farm activity for the scheduled report.
type WeeklySummary struct {
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	Income        float64   `json:"income"`
	Expense       float64   `json:"expense"`
	Net           float64   `json:"net"`
	CropRecords   int       `json:"crop_records"`
	AnimalRecords int       `json:"animal_records"`
	LowStockItems []string  `json:"low_stock_items"`
}
