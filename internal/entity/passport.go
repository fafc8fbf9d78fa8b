package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passport represents a decoded passport record for data transfer between
// layers.
type Passport struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	BirthDate       time.Time  `json:"birth_date"`
	DeliveryDate    *time.Time `json:"delivery_date,omitempty"`
	ExpirationDate  time.Time  `json:"expiration_date"`
	Nationality     string     `json:"nationality"`
	PassportNumber  string     `json:"passport_number"`
	ConfidenceScore *float64   `json:"confidence_score,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
