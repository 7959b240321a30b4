package repositories

import (
	"context"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	Update(account *models.Account) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	// ListByAccountID returns the ledger ordered by (transaction_date, created_at, id);
	// a non-nil asOf drops entries dated after it
	ListByAccountID(accountID uuid.UUID, asOf *time.Time) ([]models.Transaction, error)
}

// LedgerReaderInterface reads accounts together with their ledgers inside one database transaction
type LedgerReaderInterface interface {
	GetAccountSnapshot(ctx context.Context, ownerID, accountID uuid.UUID, asOf time.Time) (*models.LedgerSnapshot, error)
	GetPortfolioSnapshot(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*models.PortfolioSnapshot, error)
}
