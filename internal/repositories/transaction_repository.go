package repositories

import (
	"fmt"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ledgerOrder = "transaction_date ASC, created_at ASC, id ASC"

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// ListByAccountID retrieves an account's ledger in posting order
func (r *transactionRepository) ListByAccountID(accountID uuid.UUID, asOf *time.Time) ([]models.Transaction, error) {
	transactions, err := listLedger(r.db, []uuid.UUID{accountID}, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func listLedger(db *gorm.DB, accountIDs []uuid.UUID, asOf *time.Time) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if len(accountIDs) == 0 {
		return transactions, nil
	}

	query := db.Where("account_id IN ?", accountIDs)
	if asOf != nil {
		query = query.Where("transaction_date <= ?", models.DateOf(*asOf))
	}

	if err := query.Order(ledgerOrder).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
