package models

import "time"

// ComplaintCategory classifies what kind of maintenance work is needed.
type ComplaintCategory string

const (
	CategoryWater    ComplaintCategory = "Water"
	CategoryElectric ComplaintCategory = "Electric"
	CategoryCleaning ComplaintCategory = "Cleaning"
	CategoryDamage   ComplaintCategory = "Damage"
	CategoryOther    ComplaintCategory = "Other"
)

// Categories lists every valid complaint category, in display order.
var Categories = []ComplaintCategory{
	CategoryWater, CategoryElectric, CategoryCleaning, CategoryDamage, CategoryOther,
}

// ComplaintStatus is a free-standing enum, not a strict state machine:
// any warden action may set any value. Assignment and completion are the
// two triggers that also append a timeline entry.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusCompleted  ComplaintStatus = "Completed"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s ComplaintStatus) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// ComplaintPriority is mutable independently of status.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "Low"
	PriorityMedium ComplaintPriority = "Medium"
	PriorityHigh   ComplaintPriority = "High"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p ComplaintPriority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ProgressUpdate is one immutable timeline entry on a complaint. Entries
// are appended, never reordered or deleted, so timestamps are
// non-decreasing within a complaint.
type ProgressUpdate struct {
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Author      string    `json:"author,omitempty"` // "Student" or "Warden"
}

// Complaint is the central aggregate: one maintenance issue reported by a
// student, tracked through status, priority and timeline until resolution.
//
// The student fields are a denormalized snapshot frozen at submission
// time; later profile edits do not propagate into them. The Worker field
// is the opposite: a derived join refreshed on every worker mutation and
// stripped before persistence.
type Complaint struct {
	ID                    string            `json:"id"`
	StudentID             string            `json:"student_id"`
	StudentName           string            `json:"student_name"`
	StudentRegisterNumber string            `json:"student_register_number"`
	RoomNumber            string            `json:"room_number"`
	PhoneNumber           string            `json:"phone_number"`
	Category              ComplaintCategory `json:"category"`
	Description           string            `json:"description"`
	ImageURL              string            `json:"image_url,omitempty"`
	Status                ComplaintStatus   `json:"status"`
	Priority              ComplaintPriority `json:"priority"`
	SubmittedAt           time.Time         `json:"submitted_at"`
	LastUpdatedAt         time.Time         `json:"last_updated_at"`
	AssignedWorkerID      string            `json:"assigned_worker_id,omitempty"`
	Worker                *Worker           `json:"worker,omitempty"` // derived, never authoritative
	ProgressUpdates       []ProgressUpdate  `json:"progress_updates"`
	Rating                int               `json:"rating,omitempty"` // 1..5, zero means not rated
	Feedback              string            `json:"feedback,omitempty"`
}

// Clone returns a deep copy. Mutating the copy never touches the stored
// aggregate, which matters because lifecycle operations build the updated
// complaint outside the store's lock and commit it afterwards.
func (c Complaint) Clone() Complaint {
	out := c
	out.ProgressUpdates = make([]ProgressUpdate, len(c.ProgressUpdates))
	copy(out.ProgressUpdates, c.ProgressUpdates)
	if c.Worker != nil {
		w := *c.Worker
		out.Worker = &w
	}
	return out
}
