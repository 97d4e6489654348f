package analysis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hosteldesk/backend/internal/analysis"
	"hosteldesk/backend/internal/models"
)

func fixtures() []models.Complaint {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Complaint{
		{ID: "C01", Category: models.CategoryWater, Status: models.StatusInProgress, Priority: models.PriorityMedium, SubmittedAt: base.Add(48 * time.Hour)},
		{ID: "C02", Category: models.CategoryElectric, Status: models.StatusCompleted, Priority: models.PriorityHigh, SubmittedAt: base.Add(24 * time.Hour)},
		{ID: "C03", Category: models.CategoryWater, Status: models.StatusPending, Priority: models.PriorityLow, SubmittedAt: base},
		{ID: "C04", Category: models.CategoryDamage, Status: models.StatusPending, Priority: models.PriorityHigh, SubmittedAt: base.Add(72 * time.Hour)},
		{ID: "C05", Category: models.CategoryDamage, Status: models.StatusPending, Priority: models.PriorityHigh, SubmittedAt: base.Add(12 * time.Hour)},
	}
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 1, analysis.Weight(models.PriorityLow))
	assert.Equal(t, 5, analysis.Weight(models.PriorityMedium))
	assert.Equal(t, 25, analysis.Weight(models.PriorityHigh))
	assert.Equal(t, 0, analysis.Weight("Urgent"))
}

func TestCountByStatus(t *testing.T) {
	got := analysis.CountByStatus(fixtures())
	assert.Equal(t, 3, got[models.StatusPending])
	assert.Equal(t, 1, got[models.StatusInProgress])
	assert.Equal(t, 1, got[models.StatusCompleted])
}

func TestCountByCategory_IncludesZeroes(t *testing.T) {
	got := analysis.CountByCategory(fixtures())
	assert.Equal(t, 2, got[models.CategoryWater])
	assert.Equal(t, 1, got[models.CategoryElectric])
	assert.Equal(t, 2, got[models.CategoryDamage])

	// Empty slices still count, so the chart always has five slices.
	count, ok := got[models.CategoryCleaning]
	assert.True(t, ok)
	assert.Zero(t, count)
	assert.Len(t, got, len(models.Categories))
}

func TestCountByPriority(t *testing.T) {
	got := analysis.CountByPriority(fixtures())
	assert.Equal(t, 1, got[models.PriorityLow])
	assert.Equal(t, 1, got[models.PriorityMedium])
	assert.Equal(t, 3, got[models.PriorityHigh])
}

func TestOpenByUrgency(t *testing.T) {
	got := analysis.OpenByUrgency(fixtures())
	require.Len(t, got, 4)

	// Completed complaints are excluded entirely.
	for _, c := range got {
		assert.NotEqual(t, models.StatusCompleted, c.Status)
	}

	// High priority first, newer submission breaking the tie.
	assert.Equal(t, "C04", got[0].ID)
	assert.Equal(t, "C05", got[1].ID)
	assert.Equal(t, "C01", got[2].ID)
	assert.Equal(t, "C03", got[3].ID)
}

func TestOpenByUrgency_EmptyInput(t *testing.T) {
	assert.Empty(t, analysis.OpenByUrgency(nil))
}
