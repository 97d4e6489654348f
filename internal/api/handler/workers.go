package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/query"
)

// ListWorkers returns the worker pool. Optional query params narrow it:
// available=true keeps only Available workers, specialty pins the
// category.
func (h *Handler) ListWorkers(c *gin.Context) {
	workers := h.Storage.Workers()
	if c.Query("available") == "true" {
		workers = query.AvailableWorkers(workers, models.ComplaintCategory(c.Query("specialty")))
	}
	c.JSON(http.StatusOK, workers)
}

// AddWorker registers a maintenance worker.
func (h *Handler) AddWorker(c *gin.Context) {
	var req models.AddWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	worker, err := h.Storage.CreateWorker(req.Name, req.PhoneNumber, req.Specialty)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, worker)
}

// SuggestWorker proposes an available worker for a category, for the
// assignment screen's pre-selection.
func (h *Handler) SuggestWorker(c *gin.Context) {
	worker, ok := query.SuggestWorker(h.Storage.Workers(), models.ComplaintCategory(c.Query("category")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no available worker for this category"})
		return
	}
	c.JSON(http.StatusOK, worker)
}
