package models

import "time"

// Task is an item on the dashboard checklist.
type Task struct {
	ID     string    `bson:"id" json:"id"`
	Title  string    `bson:"title" json:"title"`
	IsDone bool      `bson:"is_done" json:"isDone"`
	Date   time.Time `bson:"date" json:"date"`
}
