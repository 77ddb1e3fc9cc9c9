package investment

import (
	"context"
	"errors"

	"github.com/fintrackhq/fintrack/pkg/dto"
	investmentrepo "github.com/fintrackhq/fintrack/pkg/repository/investment"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed investment repository.
func New(db *gorm.DB) investmentrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.InvestmentCreate,
) error {
	inv := &Investment{
		ID:         create.ID,
		UserID:     create.UserID,
		Date:       create.Date,
		Type:       create.Type,
		Amount:     create.Amount,
		Rate:       create.Rate,
		ActualCost: create.ActualCost,
	}
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) Get(
	ctx context.Context,
	userID, id uuid.UUID,
) (*dto.InvestmentRead, error) {
	var inv Investment
	if err := r.db.WithContext(
		ctx,
	).Where("id = ? AND user_id = ?", id, userID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&inv), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.InvestmentRead, error) {
	var invs []Investment
	if err := r.db.WithContext(
		ctx,
	).Where("user_id = ?", userID).Order("date DESC").Find(&invs).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.InvestmentRead, 0, len(invs))
	for i := range invs {
		result = append(result, mapModelToDTO(&invs[i]))
	}
	return result, nil
}

// Delete matches on both id and owner in one statement so a row owned
// by someone else is indistinguishable from a missing one.
func (r *repository) Delete(
	ctx context.Context,
	userID, id uuid.UUID,
) (bool, error) {
	res := r.db.WithContext(
		ctx,
	).Where("id = ? AND user_id = ?", id, userID).Delete(&Investment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func mapModelToDTO(inv *Investment) *dto.InvestmentRead {
	return &dto.InvestmentRead{
		ID:         inv.ID,
		UserID:     inv.UserID,
		Date:       inv.Date.Format("2006-01-02"),
		Type:       inv.Type,
		Amount:     inv.Amount,
		Rate:       inv.Rate,
		ActualCost: inv.ActualCost,
	}
}

var _ investmentrepo.Repository = (*repository)(nil)
