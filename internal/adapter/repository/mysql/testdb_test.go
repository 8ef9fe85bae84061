package mysql

import (
	"testing"

	loanDomain "fundo-backend/internal/domain/loan"
	userDomain "fundo-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with both tables migrated.
// A single connection keeps every query on the same in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&userDomain.User{}, &loanDomain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
