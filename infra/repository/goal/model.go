package goal

import (
	"time"

	usermodel "github.com/fintrackhq/fintrack/infra/repository/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal in the database. The partial unique
// index uniq_goals_active_per_user (created in infra.Migrate) limits
// each user to one row with status 'active'.
type Goal struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	User         usermodel.User  `gorm:"foreignKey:UserID"`
	TargetAmount decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status       string          `gorm:"not null;size:16;default:'active'"`
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

// TableName specifies the table name for the Goal model.
func (Goal) TableName() string {
	return "goals"
}
