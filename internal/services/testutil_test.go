package services

import (
	"testing"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/config"
	"github.com/flextrackapp/flextrack-backend/internal/database"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/session"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
		SessionTTL:      time.Hour,
		SessionCookie:   "ft_session",
	}
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	accounts := repository.NewAccountRepository(db)
	sessions := session.NewStore(db, time.Hour)
	return NewAuthService(accounts, sessions, newTestConfig())
}

// signUp registers a throwaway account and returns its id.
func signUp(t *testing.T, svc *AuthService, username, email string) uuid.UUID {
	t.Helper()
	result, err := svc.Signup(username, email, "password123")
	if err != nil {
		t.Fatalf("signup %s: %v", username, err)
	}
	return result.Account.ID
}

func seedExerciseFor(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	exercise := models.Exercise{ID: uuid.New(), Name: name, OwnerID: ownerID}
	if err := db.Create(&exercise).Error; err != nil {
		t.Fatalf("seed exercise %s: %v", name, err)
	}
	return exercise.ID
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
