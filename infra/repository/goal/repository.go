package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	goalrepo "github.com/fintrackhq/fintrack/pkg/repository/goal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed goal repository.
func New(db *gorm.DB) goalrepo.Repository {
	return &repository{db: db}
}

// Create relies on the uniq_goals_active_per_user partial index as the
// authoritative guard: a concurrent insert that slips past the service
// pre-check comes back as a duplicated-key error and is reported as
// the same conflict.
func (r *repository) Create(
	ctx context.Context,
	create *dto.GoalCreate,
) error {
	goal := &Goal{
		ID:           create.ID,
		UserID:       create.UserID,
		TargetAmount: create.TargetAmount,
		Status:       create.Status,
	}
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: user already has an active goal", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.GoalRead, error) {
	var goal Goal
	if err := r.db.WithContext(
		ctx,
	).First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&goal), nil
}

func (r *repository) GetOwned(
	ctx context.Context,
	userID, id uuid.UUID,
) (*dto.GoalRead, error) {
	var goal Goal
	if err := r.db.WithContext(
		ctx,
	).Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&goal), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	statuses []string,
) ([]*dto.GoalRead, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var goals []Goal
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.GoalRead, 0, len(goals))
	for i := range goals {
		result = append(result, mapModelToDTO(&goals[i]))
	}
	return result, nil
}

func (r *repository) HasActive(
	ctx context.Context,
	userID uuid.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Goal{}).
		Where("user_id = ? AND status = ?", userID, string(domain.GoalStatusActive)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	userID, id uuid.UUID,
	update *dto.GoalUpdate,
) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Goal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"status":       update.Status,
			"completed_at": update.CompletedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func mapModelToDTO(goal *Goal) *dto.GoalRead {
	return &dto.GoalRead{
		ID:           goal.ID,
		UserID:       goal.UserID,
		TargetAmount: goal.TargetAmount,
		Status:       goal.Status,
		CreatedAt:    goal.CreatedAt,
		CompletedAt:  goal.CompletedAt,
	}
}

var _ goalrepo.Repository = (*repository)(nil)
