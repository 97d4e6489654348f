package models

// WorkerStatus tracks a worker's availability for assignment.
type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "Available"
	WorkerBusy      WorkerStatus = "Busy"
)

// Worker is a maintenance staff member assignable to complaints within a
// specialty category. Assignment flips the status to Busy; no modeled
// operation flips it back (manual override lives in the admin CLI).
type Worker struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	PhoneNumber string            `json:"phone_number"`
	Specialty   ComplaintCategory `json:"specialty"`
	Status      WorkerStatus      `json:"status"`
}
