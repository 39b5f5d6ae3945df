package model

import "time"

// Job represents a posted job listing. Listings are append-only: there is no
// edit, close or fill operation.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Role        string    `json:"role"` // freeform text, also the match key for notifications
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateJobRequest holds the add-job form fields. Salary is stored as text.
type CreateJobRequest struct {
	Title       string
	Location    string
	Role        string
	Salary      string
	Description string
}
