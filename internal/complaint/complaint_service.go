// Package complaint provides the lifecycle engine for complaints:
// guarded mutations over status, priority, worker assignment, progress
// notes and feedback, with timeline accumulation.
package complaint

import (
	"fmt"
	"time"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/storage"
)

// Service handles the business logic for complaints.
type Service struct {
	Storage *storage.Service
}

// NewService creates a new complaint service.
func NewService(s *storage.Service) *Service {
	return &Service{Storage: s}
}

// Submit files a new complaint on behalf of the student, freezing the
// denormalized student snapshot at submission time.
func (s *Service) Submit(studentID string, category models.ComplaintCategory, description, imageURL string) (models.Complaint, error) {
	student, err := s.Storage.StudentByID(studentID)
	if err != nil {
		return models.Complaint{}, err
	}
	return s.Storage.CreateComplaint(student, category, description, imageURL)
}

// UpdateStatus sets the status. All transitions between known values are
// legal: the status is a free-standing enum, not an enforced state
// machine. A timeline entry records the change.
func (s *Service) UpdateStatus(id string, status models.ComplaintStatus) (models.Complaint, error) {
	if !models.ValidStatus(status) {
		return models.Complaint{}, fmt.Errorf("unknown status %q: %w", status, storage.ErrInvalidInput)
	}

	c, err := s.Storage.ComplaintByID(id)
	if err != nil {
		return models.Complaint{}, err
	}

	now := time.Now()
	c.Status = status
	c.LastUpdatedAt = now
	c.ProgressUpdates = append(c.ProgressUpdates, models.ProgressUpdate{
		Timestamp:   now,
		Status:      string(status),
		Description: fmt.Sprintf("Status updated to %s.", status),
	})
	if err := s.Storage.SaveComplaint(c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// UpdatePriority is a pure field mutation: it bumps LastUpdatedAt but
// appends no timeline entry.
func (s *Service) UpdatePriority(id string, priority models.ComplaintPriority) (models.Complaint, error) {
	if !models.ValidPriority(priority) {
		return models.Complaint{}, fmt.Errorf("unknown priority %q: %w", priority, storage.ErrInvalidInput)
	}

	c, err := s.Storage.ComplaintByID(id)
	if err != nil {
		return models.Complaint{}, err
	}

	c.Priority = priority
	c.LastUpdatedAt = time.Now()
	if err := s.Storage.SaveComplaint(c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// AssignWorker couples a complaint to a worker: it forces the status to
// In Progress, records an assignment timeline entry and flips the worker
// to Busy. Both entities are validated before either one is mutated.
//
// Nothing in the modeled operations ever flips the worker back to
// Available; the admin CLI carries the manual override.
func (s *Service) AssignWorker(id, workerID, instructions string) (models.Complaint, error) {
	c, err := s.Storage.ComplaintByID(id)
	if err != nil {
		return models.Complaint{}, err
	}
	worker, err := s.Storage.WorkerByID(workerID)
	if err != nil {
		return models.Complaint{}, err
	}

	now := time.Now()
	c.AssignedWorkerID = worker.ID
	c.Worker = &worker
	c.Status = models.StatusInProgress
	c.LastUpdatedAt = now
	c.ProgressUpdates = append(c.ProgressUpdates, models.ProgressUpdate{
		Timestamp:   now,
		Status:      "Assigned",
		Description: fmt.Sprintf("Assigned to %s. Instructions: %s", worker.Name, instructions),
	})
	if err := s.Storage.SaveComplaint(c); err != nil {
		return models.Complaint{}, err
	}
	if _, err := s.Storage.SetWorkerStatus(worker.ID, models.WorkerBusy); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// AddProgressNote appends a free-text timeline entry without touching
// the status.
func (s *Service) AddProgressNote(id, description string) (models.Complaint, error) {
	if description == "" {
		return models.Complaint{}, fmt.Errorf("progress note needs a description: %w", storage.ErrInvalidInput)
	}

	c, err := s.Storage.ComplaintByID(id)
	if err != nil {
		return models.Complaint{}, err
	}

	now := time.Now()
	c.LastUpdatedAt = now
	c.ProgressUpdates = append(c.ProgressUpdates, models.ProgressUpdate{
		Timestamp:   now,
		Status:      "Update",
		Description: description,
	})
	if err := s.Storage.SaveComplaint(c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// SubmitFeedback records a 1..5 rating with optional text. Resubmitting
// silently overwrites the previous rating, matching the behavior the
// student UI has always had.
func (s *Service) SubmitFeedback(id string, rating int, feedback string) (models.Complaint, error) {
	if rating < config.RatingMin || rating > config.RatingMax {
		return models.Complaint{}, fmt.Errorf("rating must be between %d and %d: %w", config.RatingMin, config.RatingMax, storage.ErrInvalidInput)
	}

	c, err := s.Storage.ComplaintByID(id)
	if err != nil {
		return models.Complaint{}, err
	}

	c.Rating = rating
	c.Feedback = feedback
	c.LastUpdatedAt = time.Now()
	if err := s.Storage.SaveComplaint(c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}
