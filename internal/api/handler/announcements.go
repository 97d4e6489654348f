package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteldesk/backend/internal/models"
)

// ListAnnouncements returns all notices, newest first.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	c.JSON(http.StatusOK, h.Storage.Announcements())
}

// AddAnnouncement posts a notice.
func (h *Handler) AddAnnouncement(c *gin.Context) {
	var req models.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	a, err := h.Storage.CreateAnnouncement(req.Title, req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateAnnouncement edits a notice and refreshes its timestamp.
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	var req models.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	a, err := h.Storage.UpdateAnnouncement(c.Param("id"), req.Title, req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAnnouncement removes a notice.
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	if err := h.Storage.DeleteAnnouncement(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
