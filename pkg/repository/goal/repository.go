package goal

import (
	"context"

	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for savings goal data access.
type Repository interface {
	// Create inserts a new goal. The store enforces at most one active
	// goal per user with a partial unique index; a concurrent duplicate
	// surfaces as domain.ErrConflict.
	Create(ctx context.Context, create *dto.GoalCreate) error

	// Get retrieves a goal by ID as stored, without ownership scoping.
	// Returns (nil, nil) when no such goal exists.
	Get(ctx context.Context, id uuid.UUID) (*dto.GoalRead, error)

	// GetOwned retrieves a goal by ID scoped to its owner.
	// Returns (nil, nil) when no owned goal exists.
	GetOwned(ctx context.Context, userID, id uuid.UUID) (*dto.GoalRead, error)

	// ListByUser retrieves goals for a user, newest created first,
	// optionally restricted to the given statuses.
	ListByUser(ctx context.Context, userID uuid.UUID, statuses []string) ([]*dto.GoalRead, error)

	// HasActive reports whether the user currently holds an active goal.
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)

	// UpdateStatus applies a status transition to an owned goal and
	// reports whether a row was updated.
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, update *dto.GoalUpdate) (bool, error)
}
