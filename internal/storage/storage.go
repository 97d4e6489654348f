// Package storage is the entity store: durable, queryable collections of
// students, wardens, workers, complaints and announcements.
//
// Collections live in memory and are written through to the Backend as
// whole-collection JSON snapshots after every mutation. A failed write is
// logged and the in-memory mutation is retained, so the session continues
// with degraded durability. Every persisted write also publishes a change
// event over Redis Pub/Sub so connected dashboards re-render.
package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
)

// Service holds the collections and their persistence collaborators.
//
// The original tracker was a single-session state container with no
// interleaving; serving it over HTTP adds concurrent callers, so every
// command takes the write lock and every read the read lock.
type Service struct {
	mu            sync.RWMutex
	students      []models.Student
	wardens       []models.Warden
	workers       []models.Worker
	complaints    []models.Complaint
	announcements []models.Announcement

	backend Backend
	Redis   *redis.Client
	log     *logrus.Logger
	ctx     context.Context
}

// NewService wires the store to its backend. rdb may be nil, which
// disables the change feed (the admin CLI runs without one).
func NewService(backend Backend, rdb *redis.Client, log *logrus.Logger) *Service {
	return &Service{
		backend: backend,
		Redis:   rdb,
		log:     log,
		ctx:     context.Background(),
	}
}

// Load populates every collection from its namespace, falling back to
// the seed dataset when a namespace is absent or unparsable. Complaints
// are persisted without their derived worker snapshot, so the join is
// re-derived once everything is in memory.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadNamespace(s, config.NamespaceStudents, &s.students, seedStudents); err != nil {
		return err
	}
	if err := loadNamespace(s, config.NamespaceWardens, &s.wardens, seedWardens); err != nil {
		return err
	}
	if err := loadNamespace(s, config.NamespaceWorkers, &s.workers, seedWorkers); err != nil {
		return err
	}
	if err := loadNamespace(s, config.NamespaceComplaints, &s.complaints, seedComplaints); err != nil {
		return err
	}
	if err := loadNamespace(s, config.NamespaceAnnouncements, &s.announcements, seedAnnouncements); err != nil {
		return err
	}

	s.refreshWorkerSnapshotsLocked()
	s.log.Infof("storage loaded: %d students, %d wardens, %d workers, %d complaints, %d announcements",
		len(s.students), len(s.wardens), len(s.workers), len(s.complaints), len(s.announcements))
	return nil
}

// loadNamespace reads one snapshot into dst, seeding on miss or parse
// failure. A backend read error is fatal: starting from seed data while
// real snapshots exist would look like data loss to the user.
func loadNamespace[T any](s *Service, namespace string, dst *[]T, seed func() []T) error {
	data, ok, err := s.backend.Load(s.ctx, namespace)
	if err != nil {
		return err
	}
	if !ok {
		*dst = seed()
		return nil
	}
	var parsed []T
	if err := json.Unmarshal(data, &parsed); err != nil {
		s.log.Warnf("snapshot %s is unparsable, falling back to seed data: %v", namespace, err)
		*dst = seed()
		return nil
	}
	*dst = parsed
	return nil
}

// persistLocked writes one namespace synchronously. Failures are logged
// and swallowed: the command already mutated memory and must not be
// rolled back at this point.
func (s *Service) persistLocked(namespace string, collection any) {
	data, err := json.Marshal(collection)
	if err != nil {
		s.log.Errorf("failed to encode %s snapshot: %v", namespace, err)
		return
	}
	if err := s.backend.Save(s.ctx, namespace, data); err != nil {
		s.log.Errorf("failed to persist %s, continuing with session-only durability: %v", namespace, err)
	}
}

// strippedComplaintsLocked returns the complaints with the derived worker
// snapshot removed, which is the shape that goes to the backend.
func (s *Service) strippedComplaintsLocked() []models.Complaint {
	out := make([]models.Complaint, len(s.complaints))
	for i, c := range s.complaints {
		cc := c.Clone()
		cc.Worker = nil
		out[i] = cc
	}
	return out
}

// publish sends one change event to the Pub/Sub channel. Nil-safe so the
// admin CLI and tests can run without Redis.
func (s *Service) publish(event models.Event) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Errorf("failed to encode event %s: %v", event.Type, err)
		return
	}
	if err := s.Redis.Publish(s.ctx, config.EventChannel, payload).Err(); err != nil {
		s.log.Errorf("failed to publish event %s: %v", event.Type, err)
	}
}

// refreshWorkerSnapshotsLocked re-derives the cached worker join on every
// complaint with an assigned worker. Runs after any worker-set mutation.
// It never bumps LastUpdatedAt: the join is a view materialization, not a
// field mutation.
func (s *Service) refreshWorkerSnapshotsLocked() {
	byID := make(map[string]models.Worker, len(s.workers))
	for _, w := range s.workers {
		byID[w.ID] = w
	}
	for i := range s.complaints {
		if s.complaints[i].AssignedWorkerID == "" {
			s.complaints[i].Worker = nil
			continue
		}
		if w, ok := byID[s.complaints[i].AssignedWorkerID]; ok {
			s.complaints[i].Worker = &w
		} else {
			s.complaints[i].Worker = nil
		}
	}
}
