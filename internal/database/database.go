package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/config"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL connection and tunes the pool. The handle is
// returned to the caller; nothing in this package holds global state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// AllModels is the migration list, ordered parents before children.
func AllModels() []interface{} {
	return []interface{}{
		&models.Account{},
		&models.Credential{},
		&models.Profile{},
		&models.Friendship{},
		&models.Exercise{},
		&models.Plan{},
		&models.Session{},
		&models.SessionSet{},
		&models.WorkoutLog{},
		&models.Challenge{},
		&models.ChallengeSet{},
		&models.ChallengeLog{},
		&models.ChallengeInvite{},
		&models.Post{},
		&models.Comment{},
		&models.PostShare{},
		&models.SessionToken{},
		&models.SystemLog{},
	}
}

// Migrate runs AutoMigrate for the whole entity graph.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
