package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
)

// CreateAnnouncement posts a notice.
func (s *Service) CreateAnnouncement(title, content string) (models.Announcement, error) {
	if title == "" || content == "" {
		return models.Announcement{}, fmt.Errorf("announcement is missing a required field: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Announcement{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.announcements = append([]models.Announcement{a}, s.announcements...)
	s.persistLocked(config.NamespaceAnnouncements, s.announcements)
	s.publish(models.Event{
		Type:      models.EventAnnouncementUpdated,
		EntityID:  a.ID,
		Summary:   a.Title,
		Timestamp: a.Timestamp,
	})
	return a, nil
}

// UpdateAnnouncement edits a notice in place and refreshes its timestamp.
func (s *Service) UpdateAnnouncement(id, title, content string) (models.Announcement, error) {
	if title == "" || content == "" {
		return models.Announcement{}, fmt.Errorf("announcement is missing a required field: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements[i].Title = title
			s.announcements[i].Content = content
			s.announcements[i].Timestamp = time.Now()
			s.persistLocked(config.NamespaceAnnouncements, s.announcements)
			s.publish(models.Event{
				Type:      models.EventAnnouncementUpdated,
				EntityID:  id,
				Summary:   title,
				Timestamp: s.announcements[i].Timestamp,
			})
			return s.announcements[i], nil
		}
	}
	return models.Announcement{}, fmt.Errorf("announcement %s: %w", id, ErrNotFound)
}

// DeleteAnnouncement removes a notice.
func (s *Service) DeleteAnnouncement(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			s.persistLocked(config.NamespaceAnnouncements, s.announcements)
			s.publish(models.Event{
				Type:      models.EventAnnouncementUpdated,
				EntityID:  id,
				Timestamp: time.Now(),
			})
			return nil
		}
	}
	return fmt.Errorf("announcement %s: %w", id, ErrNotFound)
}

// Announcements returns a copy ordered newest first. Edits refresh the
// timestamp, so an updated notice floats back to the top.
func (s *Service) Announcements() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Announcement, len(s.announcements))
	copy(out, s.announcements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
