package models

// Student is a hostel resident. The ID doubles as the register number
// and is immutable; only the phone number may change after registration.
type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RegisterNumber string `json:"register_number"`
	RoomNumber     string `json:"room_number"`
	PhoneNumber    string `json:"phone_number"`
}

// Warden is a hostel administrator. Immutable after registration.
type Warden struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
