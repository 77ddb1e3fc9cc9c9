package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database. Rows are inserted on
// first login for a given google id and never updated or deleted.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoogleID  string    `gorm:"column:google_id;uniqueIndex;not null;size:255"`
	Email     string    `gorm:"not null;size:255"`
	Name      string    `gorm:"size:255"`
	Picture   string    `gorm:"size:1024"`
	CreatedAt time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
