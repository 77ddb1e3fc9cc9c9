package investment

import "github.com/shopspring/decimal"

// NewInvestment represents the request body for recording an investment.
// Rate and ActualCost are optional here; the service enforces which one
// the investment type actually requires.
type NewInvestment struct {
	Date       string           `json:"date" validate:"required,datetime=2006-01-02"`
	Type       string           `json:"type" validate:"required"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	Rate       *decimal.Decimal `json:"rate"`
	ActualCost *decimal.Decimal `json:"actual_cost"`
}
