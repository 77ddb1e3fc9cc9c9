package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a local account backed by an external Google identity.
// Users are created exactly once per distinct google id, on first
// successful login, and are never mutated afterwards.
type User struct {
	ID        uuid.UUID
	GoogleID  string
	Email     string
	Name      string
	Picture   string
	CreatedAt time.Time
}

// NewUser builds a User from a provider identity assertion.
// The google id is issued by the provider callback, never free text.
func NewUser(googleID, email, name, picture string) (*User, error) {
	if strings.TrimSpace(googleID) == "" {
		return nil, fmt.Errorf("%w: google id is required", ErrValidation)
	}
	return &User{
		ID:       uuid.New(),
		GoogleID: googleID,
		Email:    email,
		Name:     name,
		Picture:  picture,
	}, nil
}
