package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ledgerRepository reads account rows and their ledgers inside one database transaction
// so a report never mixes two instants of the same data.
type ledgerRepository struct {
	db     *gorm.DB
	txOpts *sql.TxOptions
}

// SnapshotTxOptions is the isolation used against postgres: read-only repeatable read
func SnapshotTxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}

// NewLedgerRepository creates a ledger reader. A nil txOpts uses the driver's default isolation.
func NewLedgerRepository(db *gorm.DB, txOpts *sql.TxOptions) LedgerReaderInterface {
	return &ledgerRepository{
		db:     db,
		txOpts: txOpts,
	}
}

func (r *ledgerRepository) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if r.txOpts != nil {
		return r.db.WithContext(ctx).Transaction(fn, r.txOpts)
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

// GetAccountSnapshot returns one account owned by ownerID with its ledger up to asOf
func (r *ledgerRepository) GetAccountSnapshot(ctx context.Context, ownerID, accountID uuid.UUID, asOf time.Time) (*models.LedgerSnapshot, error) {
	var snapshot *models.LedgerSnapshot

	err := r.transaction(ctx, func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where("id = ? AND user_id = ?", accountID, ownerID).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account: %w", err)
		}

		transactions, err := listLedger(tx, []uuid.UUID{account.ID}, &asOf)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}

		snapshot = &models.LedgerSnapshot{
			Account:      account,
			Transactions: transactions,
			AsOf:         asOf,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// GetPortfolioSnapshot returns every account owned by ownerID with their ledgers up to asOf
func (r *ledgerRepository) GetPortfolioSnapshot(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*models.PortfolioSnapshot, error) {
	snapshot := &models.PortfolioSnapshot{
		OwnerID: ownerID,
		Ledgers: []models.LedgerSnapshot{},
		AsOf:    asOf,
	}

	err := r.transaction(ctx, func(tx *gorm.DB) error {
		accounts, err := listOwnerAccounts(tx, ownerID)
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(accounts))
		for i := range accounts {
			ids[i] = accounts[i].ID
		}

		transactions, err := listLedger(tx, ids, &asOf)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}

		byAccount := make(map[uuid.UUID][]models.Transaction, len(accounts))
		for _, t := range transactions {
			byAccount[t.AccountID] = append(byAccount[t.AccountID], t)
		}

		for _, account := range accounts {
			ledger := byAccount[account.ID]
			if ledger == nil {
				ledger = []models.Transaction{}
			}
			snapshot.Ledgers = append(snapshot.Ledgers, models.LedgerSnapshot{
				Account:      account,
				Transactions: ledger,
				AsOf:         asOf,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
