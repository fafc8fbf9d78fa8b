package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account for data transfer between layers. The password
// hash never leaves the repository layer.
type User struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              string    `json:"email"`
	PhoneNumber        string    `json:"phone_number"`
	Username           string    `json:"username"`
	Role               string    `json:"role"`
	UploadedPagesCount int       `json:"uploaded_pages_count"`
	PageCredits        int       `json:"page_credits"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
