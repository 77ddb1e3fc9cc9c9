package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID       uuid.UUID `json:"id"`
	GoogleID string    `json:"google_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name,omitempty"`
	Picture  string    `json:"picture,omitempty"`
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	GoogleID  string    `json:"google_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}
