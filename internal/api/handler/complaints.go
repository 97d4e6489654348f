package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteldesk/backend/internal/analysis"
	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/query"
)

// MyComplaints lists the student's own complaints, newest first.
func (h *Handler) MyComplaints(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, h.Storage.ComplaintsByStudent(user.ID()))
}

// MyComplaint returns one complaint, only if the student filed it.
func (h *Handler) MyComplaint(c *gin.Context) {
	user := currentUser(c)
	complaint, err := h.Storage.ComplaintByID(c.Param("id"))
	if err != nil || complaint.StudentID != user.ID() {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// SubmitComplaint files a new complaint for the current student.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	var req models.SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := currentUser(c)
	complaint, err := h.Complaints.Submit(user.ID(), req.Category, req.Description, req.ImageURL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, complaint)
}

// SubmitFeedback rates a completed complaint. Ownership is checked; the
// status is not, matching the engine's reference behavior.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := currentUser(c)
	existing, err := h.Storage.ComplaintByID(c.Param("id"))
	if err != nil || existing.StudentID != user.ID() {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}

	complaint, err := h.Complaints.SubmitFeedback(existing.ID, req.Rating, req.Feedback)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// ListComplaints is the warden's filtered, sorted view. Query params:
// search (free text), status (exact), sort (field key), order (asc|desc).
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints := h.Storage.Complaints()
	complaints = query.Filter(complaints, c.Query("search"), models.ComplaintStatus(c.Query("status")))
	if key := c.Query("sort"); key != "" {
		complaints = query.Sorted(complaints, query.SortKey(key), c.Query("order") == "desc")
	}
	c.JSON(http.StatusOK, complaints)
}

// ComplaintByID returns any complaint for the warden view.
func (h *Handler) ComplaintByID(c *gin.Context) {
	complaint, err := h.Storage.ComplaintByID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// UpdateStatus sets a complaint's status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	complaint, err := h.Complaints.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// UpdatePriority sets a complaint's priority.
func (h *Handler) UpdatePriority(c *gin.Context) {
	var req models.UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	complaint, err := h.Complaints.UpdatePriority(c.Param("id"), req.Priority)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// AssignWorker couples a complaint to a worker.
func (h *Handler) AssignWorker(c *gin.Context) {
	var req models.AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	complaint, err := h.Complaints.AssignWorker(c.Param("id"), req.WorkerID, req.Instructions)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// AddProgressNote appends a free-text timeline entry.
func (h *Handler) AddProgressNote(c *gin.Context) {
	var req models.ProgressNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	complaint, err := h.Complaints.AddProgressNote(c.Param("id"), req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// Dashboard aggregates the counters the warden landing page renders,
// plus the most urgent open complaints.
func (h *Handler) Dashboard(c *gin.Context) {
	complaints := h.Storage.Complaints()
	urgent := analysis.OpenByUrgency(complaints)
	if len(urgent) > 5 {
		urgent = urgent[:5]
	}
	c.JSON(http.StatusOK, gin.H{
		"by_status":   analysis.CountByStatus(complaints),
		"by_category": analysis.CountByCategory(complaints),
		"by_priority": analysis.CountByPriority(complaints),
		"total":       len(complaints),
		"urgent":      urgent,
	})
}
