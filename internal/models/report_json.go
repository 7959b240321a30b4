package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Wire formats for report values: money carries exactly two fractional digits,
// percentages one, and dates are calendar dates.
const (
	MoneyPlaces   = 2
	PercentPlaces = 1
	DateLayout    = "2006-01-02"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(PercentPlaces)
}

func nullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := money(d.Decimal)
	return &s
}

func calendarDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}

// MarshalJSON renders the account's money columns at two decimal places
func (a Account) MarshalJSON() ([]byte, error) {
	type account Account
	return json.Marshal(struct {
		account
		OpeningBalance *string `json:"opening_balance"`
		CurrentBalance string  `json:"current_balance"`
		CreditLimit    *string `json:"credit_limit"`
		MinimumPayment *string `json:"minimum_payment"`
	}{
		account:        account(a),
		OpeningBalance: nullMoney(a.OpeningBalance),
		CurrentBalance: money(a.CurrentBalance),
		CreditLimit:    nullMoney(a.CreditLimit),
		MinimumPayment: nullMoney(a.MinimumPayment),
	})
}

func (b MonthlyBucket) MarshalJSON() ([]byte, error) {
	type bucket MonthlyBucket
	return json.Marshal(struct {
		bucket
		TotalPayments         string `json:"total_payments"`
		TotalCharges          string `json:"total_charges"`
		TotalAdjustments      string `json:"total_adjustments"`
		TotalInterest         string `json:"total_interest"`
		NetChange             string `json:"net_change"`
		EndingBalanceEstimate string `json:"ending_balance_estimate"`
	}{
		bucket:                bucket(b),
		TotalPayments:         money(b.TotalPayments),
		TotalCharges:          money(b.TotalCharges),
		TotalAdjustments:      money(b.TotalAdjustments),
		TotalInterest:         money(b.TotalInterest),
		NetChange:             money(b.NetChange),
		EndingBalanceEstimate: money(b.EndingBalanceEstimate),
	})
}

func (a AccountAnalytics) MarshalJSON() ([]byte, error) {
	type analytics AccountAnalytics
	return json.Marshal(struct {
		analytics
		OpeningBalance          string  `json:"opening_balance"`
		CurrentBalance          string  `json:"current_balance"`
		TotalReduction          string  `json:"total_reduction"`
		ProgressPercentage      string  `json:"progress_percentage"`
		AverageMonthlyReduction string  `json:"average_monthly_reduction"`
		TotalPayments           string  `json:"total_payments"`
		TotalCharges            string  `json:"total_charges"`
		TotalInterest           string  `json:"total_interest"`
		InterestSaved           *string `json:"interest_saved"`
		ProjectedDebtFreeDate   *string `json:"projected_debt_free_date"`
	}{
		analytics:               analytics(a),
		OpeningBalance:          money(a.OpeningBalance),
		CurrentBalance:          money(a.CurrentBalance),
		TotalReduction:          money(a.TotalReduction),
		ProgressPercentage:      percent(a.ProgressPercentage),
		AverageMonthlyReduction: money(a.AverageMonthlyReduction),
		TotalPayments:           money(a.TotalPayments),
		TotalCharges:            money(a.TotalCharges),
		TotalInterest:           money(a.TotalInterest),
		InterestSaved:           nullMoney(a.InterestSaved),
		ProjectedDebtFreeDate:   calendarDate(a.ProjectedDebtFreeDate),
	})
}

func (t Trends) MarshalJSON() ([]byte, error) {
	type trends Trends
	return json.Marshal(struct {
		trends
		DebtChange      string `json:"debt_change"`
		ReductionChange string `json:"reduction_change"`
	}{
		trends:          trends(t),
		DebtChange:      money(t.DebtChange),
		ReductionChange: money(t.ReductionChange),
	})
}

func (o DashboardOverview) MarshalJSON() ([]byte, error) {
	type overview DashboardOverview
	return json.Marshal(struct {
		overview
		TotalDebt             string  `json:"total_debt"`
		TotalReduction        string  `json:"total_reduction"`
		InterestSaved         string  `json:"interest_saved"`
		ReductionPercentage   string  `json:"reduction_percentage"`
		ProjectedDebtFreeDate *string `json:"projected_debt_free_date"`
	}{
		overview:              overview(o),
		TotalDebt:             money(o.TotalDebt),
		TotalReduction:        money(o.TotalReduction),
		InterestSaved:         money(o.InterestSaved),
		ReductionPercentage:   percent(o.ReductionPercentage),
		ProjectedDebtFreeDate: calendarDate(o.ProjectedDebtFreeDate),
	})
}
