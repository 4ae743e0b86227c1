package services

import (
	"testing"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema. A single
// connection keeps sqlite happy under the concurrent tests while still
// letting goroutines interleave at the application level.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.WaterLog{},
		&models.StepLog{},
		&models.HealthRecord{},
		&models.HealthTip{},
	)
	if err != nil {
		t.Fatalf("automigrate failed: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, phone string) *models.User {
	t.Helper()
	svc := NewUserService(db, zap.NewNop())
	user, err := svc.GetOrCreate(phone)
	if err != nil {
		t.Fatalf("GetOrCreate(%q) error: %v", phone, err)
	}
	return user
}
