// Package query holds the pure, side-effect-free read combinators that
// back the student and warden list views: free-text filtering, stable
// sorting and worker suggestions. Everything here operates on copies the
// store hands out; nothing mutates stored state.
package query

import (
	"sort"
	"strings"

	"hosteldesk/backend/internal/models"
)

// SortKey names a scalar Complaint field the list view can sort on.
type SortKey string

const (
	SortByID            SortKey = "id"
	SortByStudentName   SortKey = "student_name"
	SortByRoomNumber    SortKey = "room_number"
	SortByCategory      SortKey = "category"
	SortByStatus        SortKey = "status"
	SortByPriority      SortKey = "priority"
	SortBySubmittedAt   SortKey = "submitted_at"
	SortByLastUpdatedAt SortKey = "last_updated_at"
	SortByRating        SortKey = "rating"
)

// Filter applies the free-text + status combinator. The term matches
// case-insensitively against id, description, student name and room
// number; status must match exactly. Empty term or status acts as a
// wildcard.
func Filter(complaints []models.Complaint, term string, status models.ComplaintStatus) []models.Complaint {
	needle := strings.ToLower(strings.TrimSpace(term))
	var out []models.Complaint
	for _, c := range complaints {
		if status != "" && c.Status != status {
			continue
		}
		if needle != "" && !matches(c, needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c models.Complaint, needle string) bool {
	for _, field := range []string{c.ID, c.Description, c.StudentName, c.RoomNumber} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Sorted returns a new slice ordered by the given key. The sort is
// stable, so equal keys keep their original (newest-first) order.
// Unknown keys leave the order untouched.
func Sorted(complaints []models.Complaint, key SortKey, descending bool) []models.Complaint {
	out := make([]models.Complaint, len(complaints))
	copy(out, complaints)

	less := lessFunc(key)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b models.Complaint) bool {
	switch key {
	case SortByID:
		return func(a, b models.Complaint) bool { return a.ID < b.ID }
	case SortByStudentName:
		return func(a, b models.Complaint) bool { return a.StudentName < b.StudentName }
	case SortByRoomNumber:
		return func(a, b models.Complaint) bool { return a.RoomNumber < b.RoomNumber }
	case SortByCategory:
		return func(a, b models.Complaint) bool { return a.Category < b.Category }
	case SortByStatus:
		return func(a, b models.Complaint) bool { return a.Status < b.Status }
	case SortByPriority:
		return func(a, b models.Complaint) bool { return a.Priority < b.Priority }
	case SortBySubmittedAt:
		return func(a, b models.Complaint) bool { return a.SubmittedAt.Before(b.SubmittedAt) }
	case SortByLastUpdatedAt:
		return func(a, b models.Complaint) bool { return a.LastUpdatedAt.Before(b.LastUpdatedAt) }
	case SortByRating:
		return func(a, b models.Complaint) bool { return a.Rating < b.Rating }
	}
	return nil
}

// AvailableWorkers narrows the worker pool to Available workers, and to
// the given specialty when one is supplied.
func AvailableWorkers(workers []models.Worker, specialty models.ComplaintCategory) []models.Worker {
	var out []models.Worker
	for _, w := range workers {
		if w.Status != models.WorkerAvailable {
			continue
		}
		if specialty != "" && w.Specialty != specialty {
			continue
		}
		out = append(out, w)
	}
	return out
}

// SuggestWorker proposes the first available worker whose specialty
// matches the complaint's category. ok is false when nobody fits.
func SuggestWorker(workers []models.Worker, category models.ComplaintCategory) (models.Worker, bool) {
	candidates := AvailableWorkers(workers, category)
	if len(candidates) == 0 {
		return models.Worker{}, false
	}
	return candidates[0], true
}
