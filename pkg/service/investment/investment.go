// Package investment provides business logic for the investment ledger.
package investment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	investmentrepo "github.com/fintrackhq/fintrack/pkg/repository/investment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput carries the caller-supplied fields for a new ledger entry.
type CreateInput struct {
	Date       time.Time
	Type       string
	Amount     decimal.Decimal
	Rate       *decimal.Decimal
	ActualCost *decimal.Decimal
}

// Service provides business logic for investment operations.
type Service struct {
	investments investmentrepo.Repository
	logger      *slog.Logger
}

// New creates an investment Service.
func New(investments investmentrepo.Repository, logger *slog.Logger) *Service {
	return &Service{investments: investments, logger: logger}
}

// List returns all ledger entries for a user, newest date first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*dto.InvestmentRead, error) {
	return s.investments.ListByUser(ctx, userID)
}

// Create validates and records a new ledger entry. The investment type
// decides the required pricing field: cd needs rate, tBill needs
// actual_cost. The created row is read back from the store so the
// response reflects store-side coercion, matching goal creation.
// Duplicate entries are allowed.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	in CreateInput,
) (*dto.InvestmentRead, error) {
	var (
		inv *domain.Investment
		err error
	)
	switch domain.InvestmentType(in.Type) {
	case domain.InvestmentTypeCD:
		if in.Rate == nil {
			return nil, fmt.Errorf("%w: rate is required for cd investments", domain.ErrValidation)
		}
		inv, err = domain.NewCD(userID, in.Date, in.Amount, *in.Rate)
	case domain.InvestmentTypeTBill:
		if in.ActualCost == nil {
			return nil, fmt.Errorf("%w: actual_cost is required for tBill investments", domain.ErrValidation)
		}
		inv, err = domain.NewTBill(userID, in.Date, in.Amount, *in.ActualCost)
	default:
		return nil, fmt.Errorf(`%w: type must be "cd" or "tBill"`, domain.ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	if err := s.investments.Create(ctx, &dto.InvestmentCreate{
		ID:         inv.ID,
		UserID:     inv.UserID,
		Date:       inv.Date,
		Type:       string(inv.Type),
		Amount:     inv.Amount,
		Rate:       inv.Rate,
		ActualCost: inv.ActualCost,
	}); err != nil {
		return nil, err
	}
	s.logger.Info("recorded investment",
		"investment_id", inv.ID,
		"user_id", userID,
		"type", inv.Type,
	)

	created, err := s.investments.Get(ctx, userID, inv.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("investment %s missing after insert", inv.ID)
	}
	return created, nil
}

// Delete removes an owned ledger entry. A zero-row delete is reported
// as not found whether the id is absent or belongs to another user.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.investments.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: investment with id %s not found", domain.ErrNotFound, id)
	}
	s.logger.Info("deleted investment", "investment_id", id, "user_id", userID)
	return nil
}
