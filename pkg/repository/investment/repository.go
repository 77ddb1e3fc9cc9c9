package investment

import (
	"context"

	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for investment ledger data access.
type Repository interface {
	// Create inserts a new ledger entry from a DTO.
	Create(ctx context.Context, create *dto.InvestmentCreate) error

	// Get retrieves an entry by ID scoped to its owner.
	// Returns (nil, nil) when no owned entry exists.
	Get(ctx context.Context, userID, id uuid.UUID) (*dto.InvestmentRead, error)

	// ListByUser retrieves all entries for a user, newest date first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.InvestmentRead, error)

	// Delete removes the entry matching both id and owner in a single
	// statement and reports whether a row was removed. Ownership lives
	// in the predicate so a foreign id looks identical to a missing one.
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}
