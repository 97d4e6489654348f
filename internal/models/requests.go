package models

// ---- Request DTOs consumed by the HTTP handlers ----

type StudentLoginRequest struct {
	RegisterNumber string `json:"register_number" binding:"required"`
	Password       string `json:"password"`
}

type StudentRegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	RegisterNumber string `json:"register_number" binding:"required"`
	RoomNumber     string `json:"room_number" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	Password       string `json:"password"`
}

type WardenLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

type WardenRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password"`
}

type SubmitComplaintRequest struct {
	Category    ComplaintCategory `json:"category" binding:"required"`
	Description string            `json:"description" binding:"required"`
	ImageURL    string            `json:"image_url"`
}

type UpdateStatusRequest struct {
	Status ComplaintStatus `json:"status" binding:"required"`
}

type UpdatePriorityRequest struct {
	Priority ComplaintPriority `json:"priority" binding:"required"`
}

type AssignWorkerRequest struct {
	WorkerID     string `json:"worker_id" binding:"required"`
	Instructions string `json:"instructions"`
}

type ProgressNoteRequest struct {
	Description string `json:"description" binding:"required"`
}

type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

type AddWorkerRequest struct {
	Name        string            `json:"name" binding:"required"`
	PhoneNumber string            `json:"phone_number" binding:"required"`
	Specialty   ComplaintCategory `json:"specialty" binding:"required"`
}

type UpdateProfileRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type AnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// LoginResponse carries the bearer token plus the resolved session user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
