package entity

import "github.com/google/uuid"

// Voyage groups passports under a destination for one user.
type Voyage struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Destination string    `json:"destination"`
}
