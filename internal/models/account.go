package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeCreditCard   = "credit_card"
	AccountTypeLoan         = "loan"
	AccountTypeLineOfCredit = "line_of_credit"
	AccountTypeOther        = "other"

	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
	AccountStatusClosed   = "closed"

	MaxInterestRatePercent = 100
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidInterestRate  = errors.New("interest rate must be between 0 and 100 percent")
	ErrInvalidDueDay        = errors.New("due day must be between 1 and 31")
	ErrInvalidMinimumPay    = errors.New("minimum payment cannot be negative")
	ErrInvalidCreditLimit   = errors.New("credit limit cannot be negative")
)

// Account represents a debt or credit account tracked for reduction progress
type Account struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string              `gorm:"type:varchar(100);not null" json:"name"`
	AccountType    string              `gorm:"type:varchar(20);not null" json:"account_type"`
	OpeningBalance decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"opening_balance"`
	CurrentBalance decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"current_balance"`
	CreditLimit    decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"credit_limit"`
	InterestRate   decimal.Decimal     `gorm:"type:decimal(7,4);not null;default:0" json:"interest_rate"`
	MinimumPayment decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"minimum_payment"`
	DueDay         *int                `json:"due_day,omitempty"`
	Status         string              `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt      time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return errors.New("account name is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if !IsValidInterestRate(a.InterestRate) {
		return ErrInvalidInterestRate
	}

	if a.DueDay != nil && (*a.DueDay < 1 || *a.DueDay > 31) {
		return ErrInvalidDueDay
	}

	if a.MinimumPayment.Valid && a.MinimumPayment.Decimal.IsNegative() {
		return ErrInvalidMinimumPay
	}

	if a.CreditLimit.Valid && a.CreditLimit.Decimal.IsNegative() {
		return ErrInvalidCreditLimit
	}

	return nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// HasMinimumPayment reports whether a minimum payment has been recorded
func (a *Account) HasMinimumPayment() bool {
	return a.MinimumPayment.Valid
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeCreditCard, AccountTypeLoan, AccountTypeLineOfCredit, AccountTypeOther:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusInactive, AccountStatusClosed:
		return true
	default:
		return false
	}
}

// IsValidInterestRate checks an annual percentage rate against the 0-100 range
func IsValidInterestRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(MaxInterestRatePercent))
}
