package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCreate represents the data needed to create a new savings goal.
type GoalCreate struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TargetAmount decimal.Decimal
	Status       string
}

// GoalUpdate represents a status transition applied to a goal.
type GoalUpdate struct {
	Status      string
	CompletedAt *time.Time
}

// GoalRead represents a read-optimized view of a savings goal.
type GoalRead struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at"`
}
