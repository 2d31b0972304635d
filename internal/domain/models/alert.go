package models

import "time"

// AlertType enumerates supported reminder categories.
type AlertType string

const (
	AlertGeneral       AlertType = "GENERAL"
	AlertFertilization AlertType = "FERTILIZATION"
	AlertHarvest       AlertType = "HARVEST"
	AlertVaccination   AlertType = "VACCINATION"
	AlertWeather       AlertType = "WEATHER"
)

// Alert is a date-based reminder. Alerts are never expired automatically;
// past-due ones stay in the list until explicitly deleted.
type Alert struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Date         time.Time `bson:"date" json:"date"`
	Type         AlertType `bson:"type" json:"type"`
	NotifySystem bool      `bson:"notify_system" json:"notifySystem"`
}

// Past reports whether the alert's date is behind the given instant.
func (a Alert) Past(now time.Time) bool {
	return a.Date.Before(now)
}
