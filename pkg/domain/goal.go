package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// ParseGoalStatus validates a wire-level status value.
func ParseGoalStatus(s string) (GoalStatus, error) {
	switch GoalStatus(s) {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusCancelled:
		return GoalStatus(s), nil
	}
	return "", fmt.Errorf(
		"%w: invalid status %q, must be active, completed, or cancelled",
		ErrValidation, s,
	)
}

// Goal is a savings goal. Each user holds at most one goal in the
// active state at any time; that invariant is enforced by a partial
// unique index in the store, not just the pre-insert check.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TargetAmount decimal.Decimal
	Status       GoalStatus
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

// NewGoal builds a goal in the active state.
func NewGoal(userID uuid.UUID, targetAmount decimal.Decimal) (*Goal, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if targetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: valid target_amount is required", ErrValidation)
	}
	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		TargetAmount: targetAmount,
		Status:       GoalStatusActive,
	}, nil
}

// Transition moves the goal to a new status. Updates may only target
// completed or cancelled; active is reachable solely through NewGoal.
// A same-status transition is a user error, not an idempotent no-op.
// CompletedAt is stamped with now on completion and cleared otherwise.
//
// Any differing pair of statuses is accepted, so a completed goal can
// still be cancelled and vice versa. That mirrors the historical
// behavior of the service; see DESIGN.md before tightening it.
func (g *Goal) Transition(to GoalStatus, now time.Time) error {
	if to != GoalStatusCompleted && to != GoalStatusCancelled {
		return fmt.Errorf(
			"%w: status is required and must be either completed or cancelled",
			ErrValidation,
		)
	}
	if g.Status == to {
		return fmt.Errorf("%w: goal is already %s", ErrValidation, to)
	}
	if to == GoalStatusCompleted {
		g.CompletedAt = &now
	} else {
		g.CompletedAt = nil
	}
	g.Status = to
	return nil
}
