package user

import (
	"context"

	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by its ID as a read-optimized DTO.
	// Returns (nil, nil) when no such user exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByGoogleID retrieves a user by its external Google identity.
	// Returns (nil, nil) when no such user exists.
	GetByGoogleID(ctx context.Context, googleID string) (*dto.UserRead, error)
}
