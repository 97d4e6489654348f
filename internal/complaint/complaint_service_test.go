package complaint_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hosteldesk/backend/internal/complaint"
	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/storage"
)

type memBackend struct {
	data map[string][]byte
}

func (b *memBackend) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	d, ok := b.data[namespace]
	return d, ok, nil
}

func (b *memBackend) Save(_ context.Context, namespace string, data []byte) error {
	b.data[namespace] = data
	return nil
}

func newEngine(t *testing.T) (*complaint.Service, *storage.Service) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := storage.NewService(&memBackend{data: make(map[string][]byte)}, nil, log)
	return complaint.NewService(store), store
}

func newStudent(t *testing.T, store *storage.Service) models.Student {
	t.Helper()
	student, err := store.CreateStudent(models.Student{
		Name: "Test Student", RegisterNumber: "192411099", RoomNumber: "101", PhoneNumber: "5550001111",
	})
	require.NoError(t, err)
	return student
}

func TestLifecycle_SubmitAssignCompleteFeedback(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	worker, err := store.CreateWorker("Anil Gupta", "9123456789", models.CategoryWater)
	require.NoError(t, err)

	c, err := engine.Submit(student.ID, models.CategoryWater, "Tap leaking in bathroom", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, models.PriorityMedium, c.Priority)
	require.Len(t, c.ProgressUpdates, 1)

	c, err = engine.AssignWorker(c.ID, worker.ID, "Check the washer first.")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, c.Status)
	assert.Equal(t, worker.ID, c.AssignedWorkerID)
	require.NotNil(t, c.Worker)
	require.Len(t, c.ProgressUpdates, 2)
	assert.Equal(t, "Assigned", c.ProgressUpdates[1].Status)
	assert.Contains(t, c.ProgressUpdates[1].Description, "Anil Gupta")
	assert.Contains(t, c.ProgressUpdates[1].Description, "Check the washer first.")

	flipped, err := store.WorkerByID(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkerBusy, flipped.Status)

	c, err = engine.UpdateStatus(c.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, c.Status)
	require.Len(t, c.ProgressUpdates, 3)

	// Completion never frees the worker.
	flipped, err = store.WorkerByID(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkerBusy, flipped.Status)

	c, err = engine.SubmitFeedback(c.ID, 5, "Fixed quickly, thanks.")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Rating)
	assert.Equal(t, "Fixed quickly, thanks.", c.Feedback)
}

func TestSubmit_UnknownStudent(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Submit("missing", models.CategoryWater, "whatever", "")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateStatus_AnyTransitionIsLegal(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)

	c, err := engine.Submit(student.ID, models.CategoryDamage, "Broken chair", "")
	require.NoError(t, err)

	// Backwards and repeated transitions are allowed; each one is a
	// timeline entry.
	for _, status := range []models.ComplaintStatus{
		models.StatusCompleted, models.StatusPending, models.StatusPending,
	} {
		c, err = engine.UpdateStatus(c.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, c.Status)
	}
	assert.Len(t, c.ProgressUpdates, 4)
}

func TestUpdateStatus_Validation(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	c, err := engine.Submit(student.ID, models.CategoryOther, "Noise at night", "")
	require.NoError(t, err)

	_, err = engine.UpdateStatus(c.ID, "Done")
	assert.ErrorIs(t, err, storage.ErrInvalidInput)

	_, err = engine.UpdateStatus("missing", models.StatusCompleted)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	unchanged, err := store.ComplaintByID(c.ID)
	require.NoError(t, err)
	assert.Len(t, unchanged.ProgressUpdates, 1)
}

func TestUpdatePriority_NoTimelineEntry(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	c, err := engine.Submit(student.ID, models.CategoryElectric, "Socket sparking", "")
	require.NoError(t, err)

	updated, err := engine.UpdatePriority(c.ID, models.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
	assert.Len(t, updated.ProgressUpdates, 1)
	assert.True(t, updated.LastUpdatedAt.After(c.LastUpdatedAt) || updated.LastUpdatedAt.Equal(c.LastUpdatedAt))

	_, err = engine.UpdatePriority(c.ID, "Urgent")
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}

func TestAssignWorker_UnknownWorkerLeavesComplaintUntouched(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	c, err := engine.Submit(student.ID, models.CategoryCleaning, "Corridor spill", "")
	require.NoError(t, err)

	_, err = engine.AssignWorker(c.ID, "missing", "")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	unchanged, err := store.ComplaintByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, unchanged.Status)
	assert.Empty(t, unchanged.AssignedWorkerID)
	assert.Len(t, unchanged.ProgressUpdates, 1)
}

func TestAssignWorker_ReassignmentReplacesWorker(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	first, err := store.CreateWorker("Ramesh Kumar", "9344349865", models.CategoryElectric)
	require.NoError(t, err)
	second, err := store.CreateWorker("Suresh Singh", "9876501234", models.CategoryElectric)
	require.NoError(t, err)

	c, err := engine.Submit(student.ID, models.CategoryElectric, "Fan wobbling", "")
	require.NoError(t, err)

	c, err = engine.AssignWorker(c.ID, first.ID, "")
	require.NoError(t, err)
	c, err = engine.AssignWorker(c.ID, second.ID, "")
	require.NoError(t, err)

	assert.Equal(t, second.ID, c.AssignedWorkerID)
	require.Len(t, c.ProgressUpdates, 3)

	// The first worker stays Busy; nothing releases workers here.
	w, err := store.WorkerByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkerBusy, w.Status)
}

func TestAddProgressNote(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	c, err := engine.Submit(student.ID, models.CategoryWater, "Low pressure", "")
	require.NoError(t, err)

	updated, err := engine.AddProgressNote(c.ID, "Plumber scheduled for tomorrow.")
	require.NoError(t, err)
	require.Len(t, updated.ProgressUpdates, 2)
	assert.Equal(t, "Update", updated.ProgressUpdates[1].Status)
	assert.Equal(t, models.StatusPending, updated.Status)

	_, err = engine.AddProgressNote(c.ID, "")
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}

func TestSubmitFeedback_BoundsAndOverwrite(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	c, err := engine.Submit(student.ID, models.CategoryOther, "Wifi dead", "")
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, err := engine.SubmitFeedback(c.ID, rating, "")
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	}

	_, err = engine.SubmitFeedback(c.ID, 2, "Slow response.")
	require.NoError(t, err)

	// Resubmission overwrites rather than erroring.
	updated, err := engine.SubmitFeedback(c.ID, 4, "Better after follow-up.")
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Better after follow-up.", updated.Feedback)
}

func TestTimeline_TimestampsNonDecreasing(t *testing.T) {
	engine, store := newEngine(t)
	student := newStudent(t, store)
	worker, err := store.CreateWorker("Anil Gupta", "9123456789", models.CategoryWater)
	require.NoError(t, err)

	c, err := engine.Submit(student.ID, models.CategoryWater, "Geyser broken", "")
	require.NoError(t, err)
	c, err = engine.AssignWorker(c.ID, worker.ID, "")
	require.NoError(t, err)
	c, err = engine.AddProgressNote(c.ID, "Part ordered.")
	require.NoError(t, err)
	c, err = engine.UpdateStatus(c.ID, models.StatusCompleted)
	require.NoError(t, err)

	require.Len(t, c.ProgressUpdates, 4)
	for i := 1; i < len(c.ProgressUpdates); i++ {
		assert.False(t, c.ProgressUpdates[i].Timestamp.Before(c.ProgressUpdates[i-1].Timestamp))
	}
}
