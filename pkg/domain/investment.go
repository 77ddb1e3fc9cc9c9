package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType discriminates the two investment shapes.
type InvestmentType string

const (
	// InvestmentTypeCD is a certificate of deposit, priced by an interest rate.
	InvestmentTypeCD InvestmentType = "cd"
	// InvestmentTypeTBill is a treasury bill, priced by its purchase cost.
	InvestmentTypeTBill InvestmentType = "tBill"
)

// Valid reports whether t is a known investment type.
func (t InvestmentType) Valid() bool {
	return t == InvestmentTypeCD || t == InvestmentTypeTBill
}

// Investment is a single ledger entry owned by a user. The type tag
// decides which of Rate and ActualCost is populated: a cd carries a
// rate, a tBill carries its actual cost, never both. Entries are
// immutable after creation except for deletion.
type Investment struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	Type       InvestmentType
	Amount     decimal.Decimal
	Rate       *decimal.Decimal
	ActualCost *decimal.Decimal
}

// NewCD builds a certificate-of-deposit entry.
func NewCD(userID uuid.UUID, date time.Time, amount, rate decimal.Decimal) (*Investment, error) {
	if err := validateCommon(userID, date, amount); err != nil {
		return nil, err
	}
	return &Investment{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
		Type:   InvestmentTypeCD,
		Amount: amount,
		Rate:   &rate,
	}, nil
}

// NewTBill builds a treasury-bill entry.
func NewTBill(userID uuid.UUID, date time.Time, amount, actualCost decimal.Decimal) (*Investment, error) {
	if err := validateCommon(userID, date, amount); err != nil {
		return nil, err
	}
	return &Investment{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		Type:       InvestmentTypeTBill,
		Amount:     amount,
		ActualCost: &actualCost,
	}, nil
}

func validateCommon(userID uuid.UUID, date time.Time, amount decimal.Decimal) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}
