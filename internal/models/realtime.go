package models

import "time"

// Event types carried over the change feed.
const (
	EventComplaintCreated    = "complaint_created"
	EventComplaintUpdated    = "complaint_updated"
	EventWorkerUpdated       = "worker_updated"
	EventAnnouncementUpdated = "announcement_updated"
)

// Event is one entity-change notification, published by the store after
// every persisted write and fanned out to connected dashboards.
type Event struct {
	Type      string    `json:"type"`
	EntityID  string    `json:"entity_id"`
	Summary   string    `json:"summary,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
