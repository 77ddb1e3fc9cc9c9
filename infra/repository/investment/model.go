package investment

import (
	"time"

	usermodel "github.com/fintrackhq/fintrack/infra/repository/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment represents a ledger entry in the database. Rate is set
// for cd rows, ActualCost for tBill rows; the application never writes
// both.
type Investment struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	User       usermodel.User   `gorm:"foreignKey:UserID"`
	Date       time.Time        `gorm:"type:date;not null"`
	Type       string           `gorm:"not null;size:16"`
	Amount     decimal.Decimal  `gorm:"type:numeric(18,2);not null"`
	Rate       *decimal.Decimal `gorm:"type:numeric(9,4)"`
	ActualCost *decimal.Decimal `gorm:"type:numeric(18,2)"`
}

// TableName specifies the table name for the Investment model.
func (Investment) TableName() string {
	return "investments"
}
