// Package handler exposes the command and query surface over HTTP. It
// is a thin collaborator: validation and state transitions live in the
// storage and complaint services, the handlers only translate between
// HTTP and the error taxonomy.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hosteldesk/backend/internal/complaint"
	"hosteldesk/backend/internal/hub"
	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/session"
	"hosteldesk/backend/internal/storage"
)

const userKey = "session_user"

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Storage    *storage.Service
	Complaints *complaint.Service
	Sessions   *session.Service
	Hub        *hub.ManagerService
	Log        *logrus.Logger
}

func NewHandler(store *storage.Service, complaints *complaint.Service, sessions *session.Service, h *hub.ManagerService, log *logrus.Logger) *Handler {
	return &Handler{Storage: store, Complaints: complaints, Sessions: sessions, Hub: h, Log: log}
}

// Routes mounts every endpoint on the engine.
func (h *Handler) Routes(r *gin.Engine) {
	r.POST("/auth/student/login", h.StudentLogin)
	r.POST("/auth/student/register", h.StudentRegister)
	r.POST("/auth/warden/login", h.WardenLogin)
	r.POST("/auth/warden/register", h.WardenRegister)

	authed := r.Group("/", h.requireAuth(""))
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/me", h.Me)
	authed.GET("/announcements", h.ListAnnouncements)
	authed.GET("/ws", h.ServeWebSocket)

	student := r.Group("/student", h.requireAuth(models.RoleStudent))
	student.GET("/complaints", h.MyComplaints)
	student.POST("/complaints", h.SubmitComplaint)
	student.GET("/complaints/:id", h.MyComplaint)
	student.POST("/complaints/:id/feedback", h.SubmitFeedback)
	student.GET("/profile", h.Profile)
	student.PATCH("/profile", h.UpdateProfile)

	warden := r.Group("/warden", h.requireAuth(models.RoleWarden))
	warden.GET("/complaints", h.ListComplaints)
	warden.GET("/complaints/:id", h.ComplaintByID)
	warden.PATCH("/complaints/:id/status", h.UpdateStatus)
	warden.PATCH("/complaints/:id/priority", h.UpdatePriority)
	warden.POST("/complaints/:id/assign", h.AssignWorker)
	warden.POST("/complaints/:id/progress", h.AddProgressNote)
	warden.GET("/dashboard", h.Dashboard)
	warden.GET("/workers", h.ListWorkers)
	warden.POST("/workers", h.AddWorker)
	warden.GET("/workers/suggest", h.SuggestWorker)
	warden.POST("/announcements", h.AddAnnouncement)
	warden.PUT("/announcements/:id", h.UpdateAnnouncement)
	warden.DELETE("/announcements/:id", h.DeleteAnnouncement)
}

// requireAuth resolves the bearer token into a live session user and
// optionally pins the role. An empty role admits both kinds of actor.
func (h *Handler) requireAuth(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}
		user, err := h.Sessions.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}
		if role != "" && user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// currentUser returns the session user the middleware resolved.
func currentUser(c *gin.Context) models.SessionUser {
	user, _ := c.Get(userKey)
	su, _ := user.(models.SessionUser)
	return su
}

// fail maps the error taxonomy onto HTTP status codes and surfaces the
// human-readable reason.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrInvalidToken):
		status = http.StatusUnauthorized
	}
	if status == http.StatusInternalServerError {
		h.Log.Errorf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// badRequest reports a malformed body.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
