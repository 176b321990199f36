package repository

import (
	"testing"

	"github.com/flextrackapp/flextrack-backend/internal/database"
	"github.com/flextrackapp/flextrack-backend/internal/models"
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

// seedAccount inserts a full account graph and returns its id.
func seedAccount(t *testing.T, db *gorm.DB, username, email string) uuid.UUID {
	t.Helper()
	accountID := uuid.New()
	profile := models.NewProfile(accountID, username)
	account := models.Account{
		ID: accountID,
		Credential: &models.Credential{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: "x",
			AccountID:    accountID,
		},
		Profile: &profile,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account %s: %v", username, err)
	}
	return accountID
}

func seedExercise(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	exercise := models.Exercise{ID: uuid.New(), Name: name, OwnerID: ownerID}
	if err := db.Create(&exercise).Error; err != nil {
		t.Fatalf("seed exercise %s: %v", name, err)
	}
	return exercise.ID
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
