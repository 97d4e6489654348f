package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
)

// CreateWorker adds a maintenance worker. New workers start Available.
func (s *Service) CreateWorker(name, phoneNumber string, specialty models.ComplaintCategory) (models.Worker, error) {
	if name == "" || phoneNumber == "" || specialty == "" {
		return models.Worker{}, fmt.Errorf("worker is missing a required field: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	worker := models.Worker{
		ID:          uuid.New().String(),
		Name:        name,
		PhoneNumber: phoneNumber,
		Specialty:   specialty,
		Status:      models.WorkerAvailable,
	}
	s.workers = append(s.workers, worker)
	s.refreshWorkerSnapshotsLocked()
	s.persistLocked(config.NamespaceWorkers, s.workers)
	s.publish(models.Event{
		Type:      models.EventWorkerUpdated,
		EntityID:  worker.ID,
		Summary:   fmt.Sprintf("Worker %s added (%s)", worker.Name, worker.Specialty),
		Timestamp: time.Now(),
	})
	return worker, nil
}

// WorkerByID looks up one worker.
func (s *Service) WorkerByID(id string) (models.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Worker{}, fmt.Errorf("worker %s: %w", id, ErrNotFound)
}

// Workers returns a copy of the collection.
func (s *Service) Workers() []models.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Worker, len(s.workers))
	copy(out, s.workers)
	return out
}

// SetWorkerStatus flips a worker's availability and re-derives the cached
// worker snapshot on every complaint referencing them.
func (s *Service) SetWorkerStatus(id string, status models.WorkerStatus) (models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workers {
		if s.workers[i].ID == id {
			s.workers[i].Status = status
			s.refreshWorkerSnapshotsLocked()
			s.persistLocked(config.NamespaceWorkers, s.workers)
			s.publish(models.Event{
				Type:      models.EventWorkerUpdated,
				EntityID:  id,
				Summary:   fmt.Sprintf("Worker %s is now %s", s.workers[i].Name, status),
				Timestamp: time.Now(),
			})
			return s.workers[i], nil
		}
	}
	return models.Worker{}, fmt.Errorf("worker %s: %w", id, ErrNotFound)
}
