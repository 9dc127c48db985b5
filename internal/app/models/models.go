package models

// RoleType defines the user role type. Roles only pick the home greeting.
type RoleType string

const (
	RoleTeacher RoleType = "teacher"
	RoleStudent RoleType = "student"
	RoleParent  RoleType = "parent"
)

// Greeting returns the home page greeting for the role
func (r RoleType) Greeting() string {
	switch r {
	case RoleTeacher:
		return "Good day, teacher!"
	case RoleStudent:
		return "Glad to see you, student!"
	case RoleParent:
		return "Good day, parents!"
	default:
		return "WELCOME!"
	}
}

// EventDateLayout is the wire format of event dates (YYYY-MM-DD HH:MM:SS)
const EventDateLayout = "2006-01-02 15:04:05"
