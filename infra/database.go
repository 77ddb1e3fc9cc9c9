package infra

import (
	"errors"
	"time"

	"github.com/fintrackhq/fintrack/config"
	goalmodel "github.com/fintrackhq/fintrack/infra/repository/goal"
	investmentmodel "github.com/fintrackhq/fintrack/infra/repository/investment"
	usermodel "github.com/fintrackhq/fintrack/infra/repository/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the process-wide database handle. The handle is
// created once at startup and passed into repositories explicitly.
func NewDBConnection(
	cnf config.DBConfig,
	appEnv string,
) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate creates the schema and its constraints. The partial unique
// index keeps the one-active-goal-per-user rule atomic in the store,
// so two concurrent creates cannot both pass the pre-insert check.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&usermodel.User{},
		&investmentmodel.Investment{},
		&goalmodel.Goal{},
	); err != nil {
		return err
	}
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_goals_active_per_user
		 ON goals (user_id) WHERE status = 'active'`,
	).Error
}
