package services

import (
	"fmt"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/analytics"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// trendLedger is an account ledger whose opening balance already resolved
type trendLedger struct {
	opening      decimal.Decimal
	transactions []models.Transaction
}

// computeTrends compares the window ending at asOf with the window before it.
// DebtChange is the growth of the summed balances across the current window;
// ReductionChange is this window's reduction minus the previous window's.
func computeTrends(ledgers []trendLedger, asOf time.Time, windowDays int, policy analytics.AdjustmentPolicy) (models.Trends, error) {
	end := models.DateOf(asOf)
	mid := end.AddDate(0, 0, -windowDays)
	start := mid.AddDate(0, 0, -windowDays)

	balanceNow := decimal.Zero
	balanceThen := decimal.Zero
	current := decimal.Zero
	previous := decimal.Zero

	for _, l := range ledgers {
		balanceNow = balanceNow.Add(l.opening)
		balanceThen = balanceThen.Add(l.opening)

		for i := range l.transactions {
			tx := &l.transactions[i]
			delta, err := analytics.BalanceDelta(tx, policy)
			if err != nil {
				return models.Trends{}, err
			}

			date := models.DateOf(tx.TransactionDate)
			if date.After(end) {
				continue
			}
			balanceNow = balanceNow.Add(delta)
			if !date.After(mid) {
				balanceThen = balanceThen.Add(delta)
			}

			switch {
			case date.After(mid):
				current = current.Sub(delta)
			case date.After(start):
				previous = previous.Sub(delta)
			}
		}
	}

	return models.Trends{
		DebtChange:      balanceNow.Sub(balanceThen),
		ReductionChange: current.Sub(previous),
		Period:          fmt.Sprintf("%d days", windowDays),
	}, nil
}
