package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteldesk/backend/internal/models"
)

// Profile returns the student's live record from the canonical
// collection, not the session snapshot, so edits show up immediately.
func (h *Handler) Profile(c *gin.Context) {
	user := currentUser(c)
	student, err := h.Storage.StudentByID(user.ID())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// UpdateProfile mutates the one editable profile field.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := currentUser(c)
	student, err := h.Storage.UpdateStudentContact(user.ID(), req.PhoneNumber)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}
