package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountAnalytics_MarshalJSON(t *testing.T) {
	date := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
	a := AccountAnalytics{
		OpeningBalance:          decimal.RequireFromString("5000"),
		CurrentBalance:          decimal.RequireFromString("4500"),
		TotalReduction:          decimal.RequireFromString("500.00"),
		ProgressPercentage:      decimal.RequireFromString("10.0"),
		AverageMonthlyReduction: decimal.RequireFromString("500"),
		InterestSaved:           decimal.NewNullDecimal(decimal.Zero),
		MonthsElapsed:           1,
		ProjectedDebtFreeDate:   &date,
		ProjectionStatus:        ProjectionProjected,
		MonthlyBuckets: []MonthlyBucket{{
			Year:                  2026,
			Month:                 3,
			TotalPayments:         decimal.RequireFromString("500"),
			NetChange:             decimal.RequireFromString("500"),
			EndingBalanceEstimate: decimal.RequireFromString("4500"),
			TransactionCount:      1,
		}},
	}

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"total_reduction":"500.00"`)
	assert.Contains(t, body, `"progress_percentage":"10.0"`)
	assert.Contains(t, body, `"opening_balance":"5000.00"`)
	assert.Contains(t, body, `"average_monthly_reduction":"500.00"`)
	assert.Contains(t, body, `"total_charges":"0.00"`)
	assert.Contains(t, body, `"interest_saved":"0.00"`)
	assert.Contains(t, body, `"projected_debt_free_date":"2026-12-20"`)
	assert.Contains(t, body, `"projection_status":"projected"`)
	assert.Contains(t, body, `"months_elapsed":1`)
	assert.Contains(t, body, `"net_change":"500.00"`)
	assert.Contains(t, body, `"ending_balance_estimate":"4500.00"`)
	assert.Contains(t, body, `"transaction_count":1`)
}

func TestAccountAnalytics_MarshalJSON_Nulls(t *testing.T) {
	raw, err := json.Marshal(AccountAnalytics{ProjectionStatus: ProjectionNoTrend})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["interest_saved"])
	assert.Nil(t, decoded["projected_debt_free_date"])
	assert.Equal(t, "0.0", decoded["progress_percentage"])
	assert.Equal(t, "0.00", decoded["current_balance"])
}

func TestDashboardOverview_MarshalJSON(t *testing.T) {
	date := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)
	o := DashboardOverview{
		UserID:                uuid.New(),
		TotalDebt:             decimal.RequireFromString("11500"),
		TotalReduction:        decimal.RequireFromString("3500.5"),
		InterestSaved:         decimal.RequireFromString("99.25"),
		ReductionPercentage:   decimal.RequireFromString("23"),
		ProjectedDebtFreeDate: &date,
		Trends: Trends{
			DebtChange:      decimal.RequireFromString("-1500"),
			ReductionChange: decimal.Zero,
			Period:          "30 days",
		},
		AccountCount: 2,
		AsOf:         "2026-03-20",
	}

	raw, err := json.Marshal(o)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"total_debt":"11500.00"`)
	assert.Contains(t, body, `"total_reduction":"3500.50"`)
	assert.Contains(t, body, `"interest_saved":"99.25"`)
	assert.Contains(t, body, `"reduction_percentage":"23.0"`)
	assert.Contains(t, body, `"projected_debt_free_date":"2027-01-31"`)
	assert.Contains(t, body, `"debt_change":"-1500.00"`)
	assert.Contains(t, body, `"reduction_change":"0.00"`)
	assert.Contains(t, body, `"period":"30 days"`)
	assert.Contains(t, body, `"account_count":2`)
	assert.Contains(t, body, `"as_of":"2026-03-20"`)
	assert.NotContains(t, body, "T00:00:00Z")
}

func TestAccount_MarshalJSON(t *testing.T) {
	a := validAccount()
	a.OpeningBalance = decimal.NewNullDecimal(decimal.RequireFromString("1500"))
	a.MinimumPayment = decimal.NewNullDecimal(decimal.RequireFromString("35.5"))

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"current_balance":"1200.00"`)
	assert.Contains(t, body, `"opening_balance":"1500.00"`)
	assert.Contains(t, body, `"minimum_payment":"35.50"`)
	assert.Contains(t, body, `"credit_limit":null`)
	assert.Contains(t, body, `"name":"Everyday Visa"`)
	assert.Contains(t, body, `"account_type":"credit_card"`)
}
