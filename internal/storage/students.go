package storage

import (
	"fmt"

	"github.com/google/uuid"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
)

// CreateStudent registers a student. The register number becomes the id
// and must be unique across all students.
func (s *Service) CreateStudent(data models.Student) (models.Student, error) {
	if data.Name == "" || data.RegisterNumber == "" || data.RoomNumber == "" || data.PhoneNumber == "" {
		return models.Student{}, fmt.Errorf("student registration is missing a required field: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.students {
		if st.ID == data.RegisterNumber {
			return models.Student{}, fmt.Errorf("register number %s is already taken: %w", data.RegisterNumber, ErrDuplicateKey)
		}
	}

	data.ID = data.RegisterNumber
	s.students = append(s.students, data)
	s.persistLocked(config.NamespaceStudents, s.students)
	return data, nil
}

// StudentByID returns the live student record, not a session snapshot.
func (s *Service) StudentByID(id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return models.Student{}, fmt.Errorf("student %s: %w", id, ErrNotFound)
}

// Students returns a copy of the collection.
func (s *Service) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// UpdateStudentContact mutates the one whitelisted profile field.
func (s *Service) UpdateStudentContact(id, phoneNumber string) (models.Student, error) {
	if phoneNumber == "" {
		return models.Student{}, fmt.Errorf("phone number is required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID == id {
			s.students[i].PhoneNumber = phoneNumber
			s.persistLocked(config.NamespaceStudents, s.students)
			return s.students[i], nil
		}
	}
	return models.Student{}, fmt.Errorf("student %s: %w", id, ErrNotFound)
}

// CreateWarden registers a warden under a generated id. Usernames are
// unique.
func (s *Service) CreateWarden(username, name string) (models.Warden, error) {
	if username == "" || name == "" {
		return models.Warden{}, fmt.Errorf("warden registration is missing a required field: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.wardens {
		if w.Username == username {
			return models.Warden{}, fmt.Errorf("username %s is already taken: %w", username, ErrDuplicateKey)
		}
	}

	warden := models.Warden{
		ID:       uuid.New().String(),
		Username: username,
		Name:     name,
	}
	s.wardens = append(s.wardens, warden)
	s.persistLocked(config.NamespaceWardens, s.wardens)
	return warden, nil
}

// WardenByUsername resolves a warden for login.
func (s *Service) WardenByUsername(username string) (models.Warden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.wardens {
		if w.Username == username {
			return w, nil
		}
	}
	return models.Warden{}, fmt.Errorf("warden %s: %w", username, ErrNotFound)
}

// WardenByID returns the warden record behind a session.
func (s *Service) WardenByID(id string) (models.Warden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.wardens {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Warden{}, fmt.Errorf("warden %s: %w", id, ErrNotFound)
}
