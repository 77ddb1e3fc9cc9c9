package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentCreate represents the data needed to record a new investment.
type InvestmentCreate struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	Type       string
	Amount     decimal.Decimal
	Rate       *decimal.Decimal
	ActualCost *decimal.Decimal
}

// InvestmentRead represents a read-optimized view of a ledger entry.
// Date is rendered as a calendar date; Rate and ActualCost serialize
// as null for the investment type that does not carry them.
type InvestmentRead struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"user_id"`
	Date       string           `json:"date"`
	Type       string           `json:"type"`
	Amount     decimal.Decimal  `json:"amount"`
	Rate       *decimal.Decimal `json:"rate"`
	ActualCost *decimal.Decimal `json:"actual_cost"`
}
