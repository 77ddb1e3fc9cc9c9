// Package goal provides business logic for the savings goal lifecycle.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	goalrepo "github.com/fintrackhq/fintrack/pkg/repository/goal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides business logic for goal operations.
type Service struct {
	goals  goalrepo.Repository
	logger *slog.Logger
}

// New creates a goal Service.
func New(goals goalrepo.Repository, logger *slog.Logger) *Service {
	return &Service{goals: goals, logger: logger}
}

// List returns the user's goals, newest created first, optionally
// filtered by status. One unrecognized status value fails the whole
// request, naming every offender; partial filtering is never attempted.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
	statuses []string,
) ([]*dto.GoalRead, error) {
	var invalid []string
	for _, raw := range statuses {
		if _, err := domain.ParseGoalStatus(raw); err != nil {
			invalid = append(invalid, raw)
		}
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf(
			"%w: invalid status values: %s. Must be active, completed, or cancelled",
			domain.ErrValidation, strings.Join(invalid, ", "),
		)
	}
	return s.goals.ListByUser(ctx, userID, statuses)
}

// Create opens a new active goal for the user. The pre-check gives a
// friendly conflict for the common case; the store's partial unique
// index is what actually holds the one-active-goal invariant when two
// creates race.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	targetAmount decimal.Decimal,
) (*dto.GoalRead, error) {
	g, err := domain.NewGoal(userID, targetAmount)
	if err != nil {
		return nil, err
	}

	hasActive, err := s.goals.HasActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, fmt.Errorf("%w: user already has an active goal", domain.ErrConflict)
	}

	if err := s.goals.Create(ctx, &dto.GoalCreate{
		ID:           g.ID,
		UserID:       g.UserID,
		TargetAmount: g.TargetAmount,
		Status:       string(g.Status),
	}); err != nil {
		return nil, err
	}
	s.logger.Info("created goal", "goal_id", g.ID, "user_id", userID)

	created, err := s.goals.Get(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("goal %s missing after insert", g.ID)
	}
	return created, nil
}

// UpdateStatus transitions an owned goal to completed or cancelled.
// completed_at is stamped on completion and cleared otherwise, then
// the updated row is read back and returned.
func (s *Service) UpdateStatus(
	ctx context.Context,
	userID, id uuid.UUID,
	status string,
) (*dto.GoalRead, error) {
	current, err := s.goals.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("%w: goal not found", domain.ErrNotFound)
	}

	g := &domain.Goal{
		ID:           current.ID,
		UserID:       current.UserID,
		TargetAmount: current.TargetAmount,
		Status:       domain.GoalStatus(current.Status),
		CreatedAt:    current.CreatedAt,
		CompletedAt:  current.CompletedAt,
	}
	if err := g.Transition(domain.GoalStatus(status), time.Now().UTC()); err != nil {
		return nil, err
	}

	updated, err := s.goals.UpdateStatus(ctx, userID, id, &dto.GoalUpdate{
		Status:      string(g.Status),
		CompletedAt: g.CompletedAt,
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: goal not found", domain.ErrNotFound)
	}
	s.logger.Info("updated goal status",
		"goal_id", id,
		"user_id", userID,
		"status", g.Status,
	)

	fresh, err := s.goals.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, fmt.Errorf("%w: goal not found", domain.ErrNotFound)
	}
	return fresh, nil
}
