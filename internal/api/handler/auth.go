package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteldesk/backend/internal/models"
)

// Authentication is a trivial lookup: the password field is accepted
// but never verified, exactly like the portal has always worked. Real
// credential checking is a stated non-goal.

// StudentLogin opens a session for an existing student.
func (h *Handler) StudentLogin(c *gin.Context) {
	var req models.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, user, err := h.Sessions.LoginStudent(req.RegisterNumber)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid register number or password."})
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// StudentRegister creates the account and logs it straight in.
func (h *Handler) StudentRegister(c *gin.Context) {
	var req models.StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	_, err := h.Storage.CreateStudent(models.Student{
		Name:           req.Name,
		RegisterNumber: req.RegisterNumber,
		RoomNumber:     req.RoomNumber,
		PhoneNumber:    req.PhoneNumber,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	token, user, err := h.Sessions.LoginStudent(req.RegisterNumber)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: user})
}

// WardenLogin opens a session for an existing warden.
func (h *Handler) WardenLogin(c *gin.Context) {
	var req models.WardenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, user, err := h.Sessions.LoginWarden(req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// WardenRegister creates the account and logs it straight in.
func (h *Handler) WardenRegister(c *gin.Context) {
	var req models.WardenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.Storage.CreateWarden(req.Username, req.Name); err != nil {
		h.fail(c, err)
		return
	}

	token, user, err := h.Sessions.LoginWarden(req.Username)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: user})
}

// Logout revokes the presented token.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(bearerToken(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the current actor, resolved live.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
