package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectionStatus explains why a projected debt-free date is or is not present
type ProjectionStatus string

const (
	ProjectionProjected ProjectionStatus = "projected"
	ProjectionNoTrend   ProjectionStatus = "no_trend"
	ProjectionTooFar    ProjectionStatus = "too_far"
)

// LedgerSnapshot is one account and its ordered ledger as read at a single instant
type LedgerSnapshot struct {
	Account      Account
	Transactions []Transaction
	AsOf         time.Time
}

// PortfolioSnapshot is every account of an owner read in the same database transaction
type PortfolioSnapshot struct {
	OwnerID uuid.UUID
	Ledgers []LedgerSnapshot
	AsOf    time.Time
}

// MonthlyBucket aggregates one calendar month of a single account's ledger.
// NetChange is expressed as reduction: positive means the balance went down.
type MonthlyBucket struct {
	AccountID             uuid.UUID       `json:"account_id"`
	Year                  int             `json:"year"`
	Month                 int             `json:"month"`
	TotalPayments         decimal.Decimal `json:"total_payments"`
	TotalCharges          decimal.Decimal `json:"total_charges"`
	TotalAdjustments      decimal.Decimal `json:"total_adjustments"`
	TotalInterest         decimal.Decimal `json:"total_interest"`
	NetChange             decimal.Decimal `json:"net_change"`
	EndingBalanceEstimate decimal.Decimal `json:"ending_balance_estimate"`
	TransactionCount      int             `json:"transaction_count"`
}

// AccountAnalytics is the per-account analytics result
type AccountAnalytics struct {
	OpeningBalance          decimal.Decimal     `json:"opening_balance"`
	CurrentBalance          decimal.Decimal     `json:"current_balance"`
	TotalReduction          decimal.Decimal     `json:"total_reduction"`
	ProgressPercentage      decimal.Decimal     `json:"progress_percentage"`
	AverageMonthlyReduction decimal.Decimal     `json:"average_monthly_reduction"`
	TotalPayments           decimal.Decimal     `json:"total_payments"`
	TotalCharges            decimal.Decimal     `json:"total_charges"`
	TotalInterest           decimal.Decimal     `json:"total_interest"`
	InterestSaved           decimal.NullDecimal `json:"interest_saved"`
	MonthsElapsed           int                 `json:"months_elapsed"`
	ProjectedDebtFreeDate   *time.Time          `json:"projected_debt_free_date"`
	ProjectionStatus        ProjectionStatus    `json:"projection_status"`
	MonthlyBuckets          []MonthlyBucket     `json:"monthly_buckets"`
}

// AccountSummary pairs an account with its analytics
type AccountSummary struct {
	Account   Account          `json:"account"`
	Analytics AccountAnalytics `json:"analytics"`
	AsOf      string           `json:"as_of"`
}

// AccountProgress is one row of the progress summary
type AccountProgress struct {
	AccountID   uuid.UUID        `json:"account_id"`
	AccountName string           `json:"account_name"`
	AccountType string           `json:"account_type"`
	IsActive    bool             `json:"is_active"`
	Analytics   AccountAnalytics `json:"analytics"`
}

// ProgressSummary lists per-account analytics for an owner
type ProgressSummary struct {
	UserID          uuid.UUID         `json:"user_id"`
	Accounts        []AccountProgress `json:"accounts"`
	InvalidAccounts []uuid.UUID       `json:"invalid_accounts,omitempty"`
	AsOf            string            `json:"as_of"`
	GeneratedAt     time.Time         `json:"generated_at"`
}

// Trends compares the current reporting window with the one before it.
// DebtChange is positive when total debt grew over the window.
type Trends struct {
	DebtChange      decimal.Decimal `json:"debt_change"`
	ReductionChange decimal.Decimal `json:"reduction_change"`
	Period          string          `json:"period"`
}

// DashboardOverview is the portfolio-wide analytics result
type DashboardOverview struct {
	UserID                uuid.UUID       `json:"user_id"`
	TotalDebt             decimal.Decimal `json:"total_debt"`
	TotalReduction        decimal.Decimal `json:"total_reduction"`
	InterestSaved         decimal.Decimal `json:"interest_saved"`
	ReductionPercentage   decimal.Decimal `json:"reduction_percentage"`
	ProjectedDebtFreeDate *time.Time      `json:"projected_debt_free_date"`
	Trends                Trends          `json:"trends"`
	AccountCount          int             `json:"account_count"`
	InterestUnavailable   []uuid.UUID     `json:"interest_unavailable,omitempty"`
	InvalidAccounts       []uuid.UUID     `json:"invalid_accounts,omitempty"`
	AsOf                  string          `json:"as_of"`
	GeneratedAt           time.Time       `json:"generated_at"`
}
