package analytics

import (
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// MaxInterestCycles bounds the baseline simulation at 50 years of monthly cycles
const MaxInterestCycles = 600

var monthlyRateDivisor = decimal.NewFromInt(1200)

// InterestResult compares the interest actually booked with a minimum-payment-only baseline
type InterestResult struct {
	ActualInterest   decimal.Decimal
	BaselineInterest decimal.Decimal
	InterestSaved    decimal.Decimal
	Cycles           int
	Capped           bool
}

// ComputeInterest simulates the baseline trajectory from the opening balance and
// subtracts the INTEREST entries in the ledger. Savings are floored at zero.
func ComputeInterest(account *models.Account, opening decimal.Decimal, transactions []models.Transaction, asOf time.Time) (*InterestResult, error) {
	if !models.IsValidInterestRate(account.InterestRate) {
		return nil, &InvalidLedgerStateError{
			AccountID: account.ID,
			Reason:    "annual interest rate must be between 0 and 100 percent",
		}
	}
	if account.MinimumPayment.Valid && account.MinimumPayment.Decimal.IsNegative() {
		return nil, &InvalidLedgerStateError{
			AccountID: account.ID,
			Reason:    "minimum payment cannot be negative",
		}
	}

	result := &InterestResult{
		ActualInterest:   decimal.Zero,
		BaselineInterest: decimal.Zero,
		InterestSaved:    decimal.Zero,
	}

	for i := range transactions {
		if transactions[i].TransactionType == models.TransactionTypeInterest {
			result.ActualInterest = result.ActualInterest.Add(transactions[i].Amount)
		}
	}

	cycles := BillingCycles(account, asOf)
	if cycles > MaxInterestCycles {
		cycles = MaxInterestCycles
		result.Capped = true
	}
	result.Cycles = cycles

	rate := account.InterestRate.Div(monthlyRateDivisor)
	balance := opening

	for c := 0; c < cycles; c++ {
		if !balance.IsPositive() || rate.IsZero() {
			break
		}

		interest := balance.Mul(rate).Round(2)
		result.BaselineInterest = result.BaselineInterest.Add(interest)

		if account.HasMinimumPayment() {
			if principal := account.MinimumPayment.Decimal.Sub(interest); principal.IsPositive() {
				balance = balance.Sub(principal)
			}
			if balance.IsNegative() {
				balance = decimal.Zero
			}
		} else {
			balance = balance.Add(interest)
		}
	}

	if saved := result.BaselineInterest.Sub(result.ActualInterest); saved.IsPositive() {
		result.InterestSaved = saved
	}

	return result, nil
}

// BillingCycles counts the due dates in (CreatedAt, asOf]. Without a due day every
// calendar month boundary counts as one cycle.
func BillingCycles(account *models.Account, asOf time.Time) int {
	start := models.DateOf(account.CreatedAt)
	end := models.DateOf(asOf)
	if !end.After(start) {
		return 0
	}

	if account.DueDay == nil {
		return monthDiff(start, end)
	}

	count := 0
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		due := dueDateIn(cursor.Year(), cursor.Month(), *account.DueDay)
		if due.After(start) && !due.After(end) {
			count++
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return count
}

func dueDateIn(year int, month time.Month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
