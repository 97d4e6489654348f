package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
)

// CreateComplaint files a new complaint for the given student, freezing
// the denormalized student snapshot at submission time. The complaint
// starts Pending with Medium priority and a seeded "Submitted" timeline
// entry, and is prepended so listings come out newest first.
func (s *Service) CreateComplaint(student models.Student, category models.ComplaintCategory, description, imageURL string) (models.Complaint, error) {
	if category == "" || description == "" {
		return models.Complaint{}, fmt.Errorf("complaint is missing a required field: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	complaint := models.Complaint{
		ID:                    uuid.New().String(),
		StudentID:             student.ID,
		StudentName:           student.Name,
		StudentRegisterNumber: student.RegisterNumber,
		RoomNumber:            student.RoomNumber,
		PhoneNumber:           student.PhoneNumber,
		Category:              category,
		Description:           description,
		ImageURL:              imageURL,
		Status:                models.StatusPending,
		Priority:              models.PriorityMedium,
		SubmittedAt:           now,
		LastUpdatedAt:         now,
		ProgressUpdates: []models.ProgressUpdate{{
			Timestamp:   now,
			Status:      "Submitted",
			Description: "Complaint submitted by student.",
			Author:      "Student",
		}},
	}

	s.complaints = append([]models.Complaint{complaint}, s.complaints...)
	s.persistLocked(config.NamespaceComplaints, s.strippedComplaintsLocked())
	s.publish(models.Event{
		Type:      models.EventComplaintCreated,
		EntityID:  complaint.ID,
		Summary:   fmt.Sprintf("%s complaint from room %s", category, student.RoomNumber),
		Timestamp: now,
	})
	return complaint.Clone(), nil
}

// ComplaintByID returns a deep copy, safe to mutate outside the lock.
func (s *Service) ComplaintByID(id string) (models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.complaints {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return models.Complaint{}, fmt.Errorf("complaint %s: %w", id, ErrNotFound)
}

// Complaints returns deep copies of the whole collection, newest first.
func (s *Service) Complaints() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Complaint, len(s.complaints))
	for i, c := range s.complaints {
		out[i] = c.Clone()
	}
	return out
}

// ComplaintsByStudent filters by exact student id, preserving insertion
// order (newest first, since creation prepends).
func (s *Service) ComplaintsByStudent(studentID string) []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Complaint
	for _, c := range s.complaints {
		if c.StudentID == studentID {
			out = append(out, c.Clone())
		}
	}
	return out
}

// SaveComplaint commits a mutated complaint back into the collection.
// The worker snapshot is re-derived from the current worker set so the
// stored join can never drift from the canonical Worker collection.
func (s *Service) SaveComplaint(c models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == c.ID {
			s.complaints[i] = c.Clone()
			s.refreshWorkerSnapshotsLocked()
			s.persistLocked(config.NamespaceComplaints, s.strippedComplaintsLocked())
			s.publish(models.Event{
				Type:      models.EventComplaintUpdated,
				EntityID:  c.ID,
				Summary:   fmt.Sprintf("Complaint for room %s is %s", c.RoomNumber, c.Status),
				Timestamp: time.Now(),
			})
			return nil
		}
	}
	return fmt.Errorf("complaint %s: %w", c.ID, ErrNotFound)
}
