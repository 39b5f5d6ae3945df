package model

import "time"

const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
)

// ValidRole reports whether role is one of the two registration roles.
func ValidRole(role string) bool {
	return role == RoleJobseeker || role == RoleEmployer
}

// User represents a registered account, either a jobseeker or an employer.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	Resume       *string   `json:"resume,omitempty"`  // Pointer for optional field
	Profile      *string   `json:"profile,omitempty"` // Pointer for optional field
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest holds the registration form fields
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Confirm  string
	Role     string
}
