// Package auth resolves external Google identities to local users.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	userrepo "github.com/fintrackhq/fintrack/pkg/repository/user"
	"github.com/google/uuid"
)

// Assertion is the identity the OAuth provider vouches for on a
// successful login.
type Assertion struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// Service maps provider identities to local user records.
type Service struct {
	users  userrepo.Repository
	logger *slog.Logger
}

// New creates an auth Service.
func New(users userrepo.Repository, logger *slog.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// Resolve returns the local user for a provider identity, creating one
// on first sight. A returning user is returned as stored: profile
// changes at the provider are not re-synced. Any store failure aborts
// the login flow.
func (s *Service) Resolve(ctx context.Context, a Assertion) (*dto.UserRead, error) {
	u, err := domain.NewUser(a.GoogleID, a.Email, a.Name, a.Picture)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetByGoogleID(ctx, a.GoogleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if err := s.users.Create(ctx, &dto.UserCreate{
		ID:       u.ID,
		GoogleID: u.GoogleID,
		Email:    u.Email,
		Name:     u.Name,
		Picture:  u.Picture,
	}); err != nil {
		return nil, err
	}
	s.logger.Info("created user for new identity", "user_id", u.ID)

	// Read back the inserted row so the caller sees store-applied
	// defaults, not the in-memory insert payload.
	created, err := s.users.GetByGoogleID(ctx, a.GoogleID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("user %s missing after insert", u.ID)
	}
	return created, nil
}

// GetUser loads a user by local id, for session rehydration.
// Returns domain.ErrUnauthenticated when no such user exists.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}
