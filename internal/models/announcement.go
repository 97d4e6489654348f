package models

import "time"

// Announcement is a notice posted by a warden. Fully mutable (editing
// refreshes the timestamp) and deletable, shown newest first.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
