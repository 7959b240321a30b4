package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the closed set of ledger entry kinds
type TransactionType string

const (
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeCharge     TransactionType = "CHARGE"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
	TransactionTypeInterest   TransactionType = "INTEREST"
)

// AdjustmentDirection says which way an ADJUSTMENT moves the balance
type AdjustmentDirection string

const (
	AdjustmentIncrease AdjustmentDirection = "INCREASE"
	AdjustmentDecrease AdjustmentDirection = "DECREASE"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidAmountScale     = errors.New("transaction amount must have at most 2 decimal places")
	ErrInvalidDirection       = errors.New("invalid adjustment direction")
	ErrMissingTransactionDate = errors.New("transaction date is required")
)

// Transaction represents a single ledger entry on a debt account
type Transaction struct {
	ID                  uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	AccountID           uuid.UUID            `gorm:"type:uuid;not null;index" json:"account_id"`
	TransactionType     TransactionType      `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount              decimal.Decimal      `gorm:"type:decimal(15,2);not null" json:"amount"`
	AdjustmentDirection *AdjustmentDirection `gorm:"type:varchar(10)" json:"adjustment_direction,omitempty"`
	TransactionDate     time.Time            `gorm:"type:date;not null;index" json:"transaction_date"`
	Description         string               `gorm:"type:text" json:"description,omitempty"`
	CreatedAt           time.Time            `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time            `gorm:"not null" json:"updated_at"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.TransactionDate = DateOf(t.TransactionDate)

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !t.TransactionType.IsValid() {
		return ErrInvalidTransactionType
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if !t.Amount.Equal(t.Amount.Round(2)) {
		return ErrInvalidAmountScale
	}

	if t.AdjustmentDirection != nil && !t.AdjustmentDirection.IsValid() {
		return ErrInvalidDirection
	}

	if t.TransactionDate.IsZero() {
		return ErrMissingTransactionDate
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValid checks membership in the closed transaction type set
func (tt TransactionType) IsValid() bool {
	switch tt {
	case TransactionTypePayment, TransactionTypeCharge, TransactionTypeAdjustment, TransactionTypeInterest:
		return true
	default:
		return false
	}
}

func (d AdjustmentDirection) IsValid() bool {
	return d == AdjustmentIncrease || d == AdjustmentDecrease
}

// ParseAdjustmentDirection accepts the config spelling ("increase"/"decrease") in any case
func ParseAdjustmentDirection(s string) (AdjustmentDirection, error) {
	switch AdjustmentDirection(strings.ToUpper(strings.TrimSpace(s))) {
	case AdjustmentIncrease:
		return AdjustmentIncrease, nil
	case AdjustmentDecrease:
		return AdjustmentDecrease, nil
	default:
		return "", ErrInvalidDirection
	}
}

// DateOf truncates an instant to its UTC calendar date
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
