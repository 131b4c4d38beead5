package postgres

import (
	"path/filepath"
	"testing"

	"aquatrace/internal/infra/persistence/model"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway sqlite database with the full schema so the
// repositories can be exercised against a real gorm backend.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "aquatrace.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(
		&model.TestingPointModel{},
		&model.QualityParameterModel{},
		&model.QualityTestModel{},
		&model.DailyRecordModel{},
		&model.QualityIncidentModel{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return db
}
