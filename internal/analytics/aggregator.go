package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidLedgerState is matched by every InvalidLedgerStateError via errors.Is
var ErrInvalidLedgerState = errors.New("invalid ledger state")

// InvalidLedgerStateError reports a ledger that cannot produce a trustworthy baseline
type InvalidLedgerStateError struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	Reason        string
}

func (e *InvalidLedgerStateError) Error() string {
	if e.TransactionID != uuid.Nil {
		return fmt.Sprintf("invalid ledger state for account %s (transaction %s): %s", e.AccountID, e.TransactionID, e.Reason)
	}
	return fmt.Sprintf("invalid ledger state for account %s: %s", e.AccountID, e.Reason)
}

func (e *InvalidLedgerStateError) Is(target error) bool {
	return target == ErrInvalidLedgerState
}

var hundred = decimal.NewFromInt(100)

// AdjustmentPolicy decides the direction of ADJUSTMENT entries that carry none
type AdjustmentPolicy struct {
	DefaultDirection models.AdjustmentDirection
}

// DefaultAdjustmentPolicy treats undirected adjustments as balance increases
func DefaultAdjustmentPolicy() AdjustmentPolicy {
	return AdjustmentPolicy{DefaultDirection: models.AdjustmentIncrease}
}

func (p AdjustmentPolicy) direction(tx *models.Transaction) models.AdjustmentDirection {
	if tx.AdjustmentDirection != nil {
		return *tx.AdjustmentDirection
	}
	if p.DefaultDirection == "" {
		return models.AdjustmentIncrease
	}
	return p.DefaultDirection
}

// Aggregation holds the ledger statistics of one account at a reporting instant.
// LedgerBalance is opening plus every signed delta and is the reported current balance.
type Aggregation struct {
	OpeningBalance          decimal.Decimal
	LedgerBalance           decimal.Decimal
	TotalPayments           decimal.Decimal
	TotalCharges            decimal.Decimal
	TotalAdjustments        decimal.Decimal
	TotalInterest           decimal.Decimal
	TotalReduction          decimal.Decimal
	ProgressPercentage      decimal.Decimal
	AverageMonthlyReduction decimal.Decimal
	MonthsElapsed           int
	Buckets                 []models.MonthlyBucket
}

// BalanceDelta returns how much a transaction moves the account balance.
// Positive grows the debt, negative reduces it.
func BalanceDelta(tx *models.Transaction, policy AdjustmentPolicy) (decimal.Decimal, error) {
	switch tx.TransactionType {
	case models.TransactionTypePayment:
		return tx.Amount.Neg(), nil
	case models.TransactionTypeCharge:
		return tx.Amount, nil
	case models.TransactionTypeInterest:
		return tx.Amount, nil
	case models.TransactionTypeAdjustment:
		switch policy.direction(tx) {
		case models.AdjustmentIncrease:
			return tx.Amount, nil
		case models.AdjustmentDecrease:
			return tx.Amount.Neg(), nil
		default:
			return decimal.Zero, &InvalidLedgerStateError{
				AccountID:     tx.AccountID,
				TransactionID: tx.ID,
				Reason:        fmt.Sprintf("unknown adjustment direction %q", policy.direction(tx)),
			}
		}
	default:
		return decimal.Zero, &InvalidLedgerStateError{
			AccountID:     tx.AccountID,
			TransactionID: tx.ID,
			Reason:        fmt.Sprintf("unknown transaction type %q", tx.TransactionType),
		}
	}
}

// OpeningBalance resolves the reduction baseline of an account.
// An empty ledger falls back to the current balance; a non-empty one requires a recorded opening balance.
func OpeningBalance(account *models.Account, transactions []models.Transaction) (decimal.Decimal, error) {
	if account.OpeningBalance.Valid {
		return account.OpeningBalance.Decimal, nil
	}
	if len(transactions) == 0 {
		return account.CurrentBalance, nil
	}
	return decimal.Zero, &InvalidLedgerStateError{
		AccountID: account.ID,
		Reason:    "opening balance is not recorded but the ledger has transactions",
	}
}

// MonthsElapsed counts calendar months between two instants, never less than 1
func MonthsElapsed(from, to time.Time) int {
	months := monthDiff(from, to)
	if months < 1 {
		return 1
	}
	return months
}

func monthDiff(from, to time.Time) int {
	f := from.UTC()
	t := to.UTC()
	return (t.Year()-f.Year())*12 + int(t.Month()) - int(f.Month())
}

// Aggregate computes sums, reduction, progress and monthly buckets for one account.
// Transactions must already be filtered to asOf and ordered by date.
func Aggregate(account *models.Account, transactions []models.Transaction, asOf time.Time, policy AdjustmentPolicy) (*Aggregation, error) {
	opening, err := OpeningBalance(account, transactions)
	if err != nil {
		return nil, err
	}

	agg := &Aggregation{
		OpeningBalance:          opening,
		LedgerBalance:           opening,
		TotalPayments:           decimal.Zero,
		TotalCharges:            decimal.Zero,
		TotalAdjustments:        decimal.Zero,
		TotalInterest:           decimal.Zero,
		TotalReduction:          decimal.Zero,
		ProgressPercentage:      decimal.Zero,
		AverageMonthlyReduction: decimal.Zero,
		MonthsElapsed:           MonthsElapsed(account.CreatedAt, asOf),
		Buckets:                 []models.MonthlyBucket{},
	}

	buckets := make(map[int]*models.MonthlyBucket)
	var keys []int

	for i := range transactions {
		tx := &transactions[i]

		delta, err := BalanceDelta(tx, policy)
		if err != nil {
			return nil, err
		}

		date := tx.TransactionDate.UTC()
		key := date.Year()*12 + int(date.Month()) - 1
		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.MonthlyBucket{
				AccountID:        account.ID,
				Year:             date.Year(),
				Month:            int(date.Month()),
				TotalPayments:    decimal.Zero,
				TotalCharges:     decimal.Zero,
				TotalAdjustments: decimal.Zero,
				TotalInterest:    decimal.Zero,
				NetChange:        decimal.Zero,
			}
			buckets[key] = bucket
			keys = append(keys, key)
		}

		switch tx.TransactionType {
		case models.TransactionTypePayment:
			agg.TotalPayments = agg.TotalPayments.Add(tx.Amount)
			bucket.TotalPayments = bucket.TotalPayments.Add(tx.Amount)
		case models.TransactionTypeCharge:
			agg.TotalCharges = agg.TotalCharges.Add(tx.Amount)
			bucket.TotalCharges = bucket.TotalCharges.Add(tx.Amount)
		case models.TransactionTypeInterest:
			agg.TotalInterest = agg.TotalInterest.Add(tx.Amount)
			bucket.TotalInterest = bucket.TotalInterest.Add(tx.Amount)
		case models.TransactionTypeAdjustment:
			agg.TotalAdjustments = agg.TotalAdjustments.Add(delta)
			bucket.TotalAdjustments = bucket.TotalAdjustments.Add(delta)
		}

		bucket.NetChange = bucket.NetChange.Sub(delta)
		bucket.TransactionCount++
		agg.LedgerBalance = agg.LedgerBalance.Add(delta)
	}

	sort.Ints(keys)
	running := opening
	for _, key := range keys {
		bucket := buckets[key]
		running = running.Sub(bucket.NetChange)
		bucket.EndingBalanceEstimate = running
		agg.Buckets = append(agg.Buckets, *bucket)
	}

	if reduction := opening.Sub(agg.LedgerBalance); reduction.IsPositive() {
		agg.TotalReduction = reduction
	}

	agg.ProgressPercentage = ProgressPercentage(agg.TotalReduction, opening)
	agg.AverageMonthlyReduction = agg.TotalReduction.Div(decimal.NewFromInt(int64(agg.MonthsElapsed)))

	return agg, nil
}

// ProgressPercentage is reduction over opening as a percentage clamped to [0, 100]
func ProgressPercentage(reduction, opening decimal.Decimal) decimal.Decimal {
	if !opening.IsPositive() {
		return decimal.Zero
	}
	pct := reduction.Div(opening).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
