package goal

import "github.com/shopspring/decimal"

// NewGoal represents the request body for opening a savings goal.
type NewGoal struct {
	TargetAmount *decimal.Decimal `json:"target_amount" validate:"required"`
}

// UpdateGoalInput represents the request body for a status transition.
type UpdateGoalInput struct {
	Status string `json:"status" validate:"required"`
}
