package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is a single-use, expiring registration token bound to an email.
type Invitation struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	IsUsed    bool      `json:"is_used"`
}

// Valid reports whether the invitation can still be redeemed at t.
func (i *Invitation) Valid(t time.Time) bool {
	return !i.IsUsed && i.ExpiresAt.After(t)
}
