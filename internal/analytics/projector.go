package analytics

import (
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// MaxProjectionMonths is the furthest payoff horizon still reported as a date
const MaxProjectionMonths = 1200

// Projection is the extrapolated debt-free date, nil unless Status is projected
type Projection struct {
	Date   *time.Time
	Months int
	Status models.ProjectionStatus
}

// Project extrapolates the reduction velocity (totalReduction over monthsElapsed) forward from asOf.
// The month count is ceil(balance * monthsElapsed / totalReduction) so a repeating-decimal
// velocity never adds a month.
func Project(currentBalance, totalReduction decimal.Decimal, monthsElapsed int, asOf time.Time) Projection {
	if !totalReduction.IsPositive() || monthsElapsed < 1 {
		return Projection{Status: models.ProjectionNoTrend}
	}

	months := decimal.Zero
	if currentBalance.IsPositive() {
		months = currentBalance.Mul(decimal.NewFromInt(int64(monthsElapsed))).Div(totalReduction).Ceil()
	}
	if months.GreaterThan(decimal.NewFromInt(MaxProjectionMonths)) {
		return Projection{Status: models.ProjectionTooFar}
	}

	n := int(months.IntPart())
	date := AddMonths(models.DateOf(asOf), n)
	return Projection{Date: &date, Months: n, Status: models.ProjectionProjected}
}

// AddMonths moves a date by calendar months, clamping the day to the target month's length
func AddMonths(t time.Time, months int) time.Time {
	u := t.UTC()
	first := time.Date(u.Year(), u.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := u.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC)
}
