package storage

import (
	"time"

	"hosteldesk/backend/internal/models"
)

// Seed dataset used when a namespace has never been written or its
// snapshot cannot be parsed. Matches the fixtures the frontend ships
// with, so a fresh backend and a fresh browser tab agree.

func daysAgo(n int) time.Time {
	return time.Now().Add(-time.Duration(n) * 24 * time.Hour)
}

func seedStudents() []models.Student {
	return []models.Student{
		{ID: "192411045", Name: "Gunasekar", RegisterNumber: "192411045", RoomNumber: "509", PhoneNumber: "9876543210"},
		{ID: "192411046", Name: "Priya Sharma", RegisterNumber: "192411046", RoomNumber: "302", PhoneNumber: "9876543211"},
		{ID: "192411047", Name: "Raj Patel", RegisterNumber: "192411047", RoomNumber: "415", PhoneNumber: "9876543212"},
		{ID: "192411048", Name: "Anjali Singh", RegisterNumber: "192411048", RoomNumber: "210", PhoneNumber: "9876543213"},
		{ID: "192411049", Name: "Vikram Reddy", RegisterNumber: "192411049", RoomNumber: "501", PhoneNumber: "9876543214"},
	}
}

func seedWardens() []models.Warden {
	return []models.Warden{
		{ID: "W01", Username: "warden1", Name: "Mr. Sharma"},
		{ID: "W02", Username: "warden2", Name: "Mrs. Gupta"},
	}
}

func seedWorkers() []models.Worker {
	return []models.Worker{
		{ID: "WKR01", Name: "Ramesh Kumar", PhoneNumber: "9344349865", Specialty: models.CategoryElectric, Status: models.WorkerBusy},
		{ID: "WKR02", Name: "Suresh Singh", PhoneNumber: "9876501234", Specialty: models.CategoryCleaning, Status: models.WorkerAvailable},
		{ID: "WKR03", Name: "Anil Gupta", PhoneNumber: "9123456789", Specialty: models.CategoryWater, Status: models.WorkerAvailable},
	}
}

func seedComplaints() []models.Complaint {
	return []models.Complaint{
		{
			ID:                    "C04",
			StudentID:             "192411046",
			StudentName:           "Priya Sharma",
			StudentRegisterNumber: "192411046",
			RoomNumber:            "302",
			PhoneNumber:           "9876543211",
			Category:              models.CategoryDamage,
			Description:           "Window pane is cracked and needs to be replaced.",
			Status:                models.StatusPending,
			Priority:              models.PriorityMedium,
			SubmittedAt:           daysAgo(1),
			LastUpdatedAt:         daysAgo(1),
			ProgressUpdates: []models.ProgressUpdate{
				{Timestamp: daysAgo(1), Status: "Submitted", Description: "Complaint submitted by student.", Author: "Student"},
			},
		},
		{
			ID:                    "C01",
			StudentID:             "192411045",
			StudentName:           "Gunasekar",
			StudentRegisterNumber: "192411045",
			RoomNumber:            "509",
			PhoneNumber:           "9876543210",
			Category:              models.CategoryWater,
			Description:           "Shower tap is leaking continuously in the bathroom.",
			ImageURL:              "https://images.unsplash.com/photo-1587004276722-29737cc2e162?w=600",
			Status:                models.StatusPending,
			Priority:              models.PriorityHigh,
			SubmittedAt:           daysAgo(2),
			LastUpdatedAt:         daysAgo(2),
			ProgressUpdates: []models.ProgressUpdate{
				{Timestamp: daysAgo(2), Status: "Submitted", Description: "Complaint submitted by student.", Author: "Student"},
			},
		},
		{
			ID:                    "C02",
			StudentID:             "192411047",
			StudentName:           "Raj Patel",
			StudentRegisterNumber: "192411047",
			RoomNumber:            "415",
			PhoneNumber:           "9876543212",
			Category:              models.CategoryElectric,
			Description:           "The fan in my room is not working. It makes a loud noise but doesn't rotate.",
			Status:                models.StatusInProgress,
			Priority:              models.PriorityMedium,
			SubmittedAt:           daysAgo(3),
			LastUpdatedAt:         daysAgo(1),
			AssignedWorkerID:      "WKR01",
			ProgressUpdates: []models.ProgressUpdate{
				{Timestamp: daysAgo(3), Status: "Submitted", Description: "Complaint submitted by student.", Author: "Student"},
				{Timestamp: daysAgo(1), Status: "Assigned", Description: "Assigned to Ramesh Kumar. Instructions: Check fan motor.", Author: "Warden"},
			},
		},
		{
			ID:                    "C03",
			StudentID:             "192411048",
			StudentName:           "Anjali Singh",
			StudentRegisterNumber: "192411048",
			RoomNumber:            "210",
			PhoneNumber:           "9876543213",
			Category:              models.CategoryCleaning,
			Description:           "The corridor on the second floor has not been cleaned for three days.",
			Status:                models.StatusCompleted,
			Priority:              models.PriorityLow,
			SubmittedAt:           daysAgo(7),
			LastUpdatedAt:         daysAgo(5),
			AssignedWorkerID:      "WKR02",
			ProgressUpdates: []models.ProgressUpdate{
				{Timestamp: daysAgo(7), Status: "Submitted", Description: "Complaint submitted by student.", Author: "Student"},
				{Timestamp: daysAgo(6), Status: "Assigned", Description: "Assigned to Suresh Singh.", Author: "Warden"},
				{Timestamp: daysAgo(5), Status: "Completed", Description: "Cleaning has been completed.", Author: "Warden"},
			},
			Rating:   4,
			Feedback: "The cleaning was done well, but it took a bit long to get started.",
		},
	}
}

func seedAnnouncements() []models.Announcement {
	return []models.Announcement{
		{ID: "A01", Title: "Water Supply Interruption", Content: "There will be a temporary water supply interruption tomorrow from 10 AM to 12 PM for pipeline maintenance.", Timestamp: daysAgo(1)},
		{ID: "A02", Title: "Monthly Pest Control", Content: "The monthly pest control service is scheduled for this Saturday. Please ensure your rooms are accessible.", Timestamp: daysAgo(3)},
		{ID: "A03", Title: "Wi-Fi Network Upgrade", Content: "The hostel Wi-Fi network will be upgraded on Friday night. Expect intermittent connectivity issues between 1 AM and 4 AM.", Timestamp: daysAgo(5)},
	}
}
