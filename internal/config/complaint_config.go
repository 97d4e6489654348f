package config

import "time"

const (
	// Feedback
	RatingMin = 1
	RatingMax = 5

	// Session
	SessionTTL    = 72 * time.Hour
	SessionIssuer = "hosteldesk-service"

	// Storage namespaces. Each one holds a full JSON snapshot of a
	// collection and must stay stable across releases, otherwise old
	// snapshots become unreachable.
	NamespaceStudents      = "hostel_students"
	NamespaceWardens       = "hostel_wardens"
	NamespaceWorkers       = "hostel_workers"
	NamespaceComplaints    = "hostel_complaints"
	NamespaceAnnouncements = "hostel_announcements"

	// EventChannel is the Redis Pub/Sub channel that carries entity
	// change events to every running hub instance.
	EventChannel = "hostel:events"
)

// PriorityWeights rank complaints for the warden dashboard urgency view.
var PriorityWeights = map[string]int{
	"Low":    1,
	"Medium": 5,
	"High":   25,
}
