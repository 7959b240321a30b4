package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database. The pool is pinned to one
// connection because every new sqlite :memory: connection is a separate database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestAccount inserts an active credit card account with the given opening balance
func CreateTestAccount(t *testing.T, db *DB, ownerID uuid.UUID, opening string, createdAt time.Time) *models.Account {
	t.Helper()

	balance := decimal.RequireFromString(opening)
	account := &models.Account{
		UserID:         ownerID,
		Name:           "Test Card",
		AccountType:    models.AccountTypeCreditCard,
		OpeningBalance: decimal.NewNullDecimal(balance),
		CurrentBalance: balance,
		InterestRate:   decimal.NewFromInt(20),
		Status:         models.AccountStatusActive,
		CreatedAt:      createdAt,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CreateTestTransaction inserts one ledger entry
func CreateTestTransaction(t *testing.T, db *DB, accountID uuid.UUID, txType models.TransactionType, amount string, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		AccountID:       accountID,
		TransactionType: txType,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: date,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
