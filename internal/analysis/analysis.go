// Package analysis provides aggregate statistics over the complaint
// collection: status, category and priority tallies for the dashboards,
// and urgency weighting for the warden's attention list. Data volumes
// are small, so everything is a single pass recomputed on demand.
package analysis

import (
	"sort"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
)

// Weight returns the urgency weight for a priority. It returns 0 if the
// priority is not recognized.
func Weight(priority models.ComplaintPriority) int {
	return config.PriorityWeights[string(priority)]
}

// CountByStatus tallies complaints per status.
func CountByStatus(complaints []models.Complaint) map[models.ComplaintStatus]int {
	out := make(map[models.ComplaintStatus]int)
	for _, c := range complaints {
		out[c.Status]++
	}
	return out
}

// CountByCategory tallies complaints per category, including zero
// entries so charts always show all five slices.
func CountByCategory(complaints []models.Complaint) map[models.ComplaintCategory]int {
	out := make(map[models.ComplaintCategory]int, len(models.Categories))
	for _, cat := range models.Categories {
		out[cat] = 0
	}
	for _, c := range complaints {
		out[c.Category]++
	}
	return out
}

// CountByPriority tallies complaints per priority.
func CountByPriority(complaints []models.Complaint) map[models.ComplaintPriority]int {
	out := make(map[models.ComplaintPriority]int)
	for _, c := range complaints {
		out[c.Priority]++
	}
	return out
}

// OpenByUrgency returns the non-completed complaints, most urgent first:
// higher priority weight wins, newer submission breaks ties.
func OpenByUrgency(complaints []models.Complaint) []models.Complaint {
	var out []models.Complaint
	for _, c := range complaints {
		if c.Status != models.StatusCompleted {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := Weight(out[i].Priority), Weight(out[j].Priority)
		if wi != wj {
			return wi > wj
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}
