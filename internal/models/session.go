package models

// Role tags a session with the kind of actor it belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleWarden  Role = "warden"
)

// SessionUser is the resolved current actor: the live entity record
// tagged with its role. Exactly one of Student/Warden is set, matching
// the Role field.
type SessionUser struct {
	Role    Role     `json:"role"`
	Student *Student `json:"student,omitempty"`
	Warden  *Warden  `json:"warden,omitempty"`
}

// ID returns the entity id behind the session, regardless of role.
func (u SessionUser) ID() string {
	switch u.Role {
	case RoleStudent:
		if u.Student != nil {
			return u.Student.ID
		}
	case RoleWarden:
		if u.Warden != nil {
			return u.Warden.ID
		}
	}
	return ""
}
