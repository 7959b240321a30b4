package services

import (
	"testing"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/analytics"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendTx(txType models.TransactionType, amount string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:              uuid.New(),
		TransactionType: txType,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: date,
	}
}

func TestComputeTrends(t *testing.T) {
	asOf := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	day := func(m time.Month, d int) time.Time { return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC) }
	decrease := models.AdjustmentDecrease

	adjustment := trendTx(models.TransactionTypeAdjustment, "25.00", day(3, 1))
	adjustment.AdjustmentDirection = &decrease

	ledgers := []trendLedger{
		{
			opening: decimal.RequireFromString("5000.00"),
			transactions: []models.Transaction{
				// before both windows
				trendTx(models.TransactionTypePayment, "400.00", day(1, 2)),
				// previous window (Jan 19, Feb 18]
				trendTx(models.TransactionTypePayment, "300.00", day(2, 18)),
				trendTx(models.TransactionTypeInterest, "40.00", day(2, 1)),
				// current window (Feb 18, Mar 20]
				trendTx(models.TransactionTypePayment, "500.00", day(3, 20)),
				trendTx(models.TransactionTypeCharge, "120.00", day(2, 19)),
				adjustment,
			},
		},
		{
			opening:      decimal.RequireFromString("700.00"),
			transactions: []models.Transaction{trendTx(models.TransactionTypePayment, "100.00", day(3, 10))},
		},
	}

	trends, err := computeTrends(ledgers, asOf, 30, analytics.DefaultAdjustmentPolicy())
	require.NoError(t, err)

	// current reduction 500 - 120 + 25 + 100 = 505, previous 300 - 40 = 260
	assert.True(t, decimal.RequireFromString("-505").Equal(trends.DebtChange), trends.DebtChange.String())
	assert.True(t, decimal.RequireFromString("245").Equal(trends.ReductionChange), trends.ReductionChange.String())
	assert.Equal(t, "30 days", trends.Period)
}

func TestComputeTrends_IgnoresEntriesAfterAsOf(t *testing.T) {
	asOf := time.Date(2026, 3, 20, 18, 45, 0, 0, time.UTC)
	ledgers := []trendLedger{{
		opening:      decimal.RequireFromString("1000.00"),
		transactions: []models.Transaction{trendTx(models.TransactionTypePayment, "50.00", time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC))},
	}}

	trends, err := computeTrends(ledgers, asOf, 7, analytics.DefaultAdjustmentPolicy())
	require.NoError(t, err)
	assert.True(t, trends.DebtChange.IsZero())
	assert.True(t, trends.ReductionChange.IsZero())
	assert.Equal(t, "7 days", trends.Period)
}

func TestComputeTrends_UnknownTransactionType(t *testing.T) {
	ledgers := []trendLedger{{
		opening:      decimal.RequireFromString("1000.00"),
		transactions: []models.Transaction{trendTx(models.TransactionType("REFUND"), "50.00", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))},
	}}

	_, err := computeTrends(ledgers, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), 30, analytics.DefaultAdjustmentPolicy())
	assert.ErrorIs(t, err, analytics.ErrInvalidLedgerState)
}
