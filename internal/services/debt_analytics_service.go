package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/analytics"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTrendWindowDays = 30
	DefaultMaxParallel     = 4
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidAsOf  = errors.New("reporting date is required")
	ErrInvalidOwner = errors.New("owner ID is required")
)

// AnalyticsOptions configures the report assembler
type AnalyticsOptions struct {
	TrendWindowDays  int
	Adjustment       analytics.AdjustmentPolicy
	ProjectionPolicy ProjectionPolicy
	MaxParallel      int
	Now              func() time.Time
}

// NewAnalyticsOptions builds assembler options from validated configuration
func NewAnalyticsOptions(cfg *config.AnalyticsConfig) (AnalyticsOptions, error) {
	direction, err := models.ParseAdjustmentDirection(cfg.AdjustmentDefaultDirection)
	if err != nil {
		return AnalyticsOptions{}, fmt.Errorf("invalid adjustment direction: %w", err)
	}

	policy, err := NewProjectionPolicy(cfg.PortfolioProjectionPolicy)
	if err != nil {
		return AnalyticsOptions{}, err
	}

	return AnalyticsOptions{
		TrendWindowDays:  cfg.TrendWindowDays,
		Adjustment:       analytics.AdjustmentPolicy{DefaultDirection: direction},
		ProjectionPolicy: policy,
		MaxParallel:      cfg.MaxParallel,
		Now:              time.Now,
	}, nil
}

type debtAnalyticsService struct {
	ledger  repositories.LedgerReaderInterface
	metrics MetricsRecorderInterface
	opts    AnalyticsOptions
}

func NewDebtAnalyticsService(
	ledger repositories.LedgerReaderInterface,
	metrics MetricsRecorderInterface,
	opts AnalyticsOptions,
) DebtAnalyticsServiceInterface {
	if opts.TrendWindowDays <= 0 {
		opts.TrendWindowDays = DefaultTrendWindowDays
	}
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = DefaultMaxParallel
	}
	if opts.ProjectionPolicy == nil {
		opts.ProjectionPolicy = allAccountsPolicy{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &debtAnalyticsService{
		ledger:  ledger,
		metrics: metrics,
		opts:    opts,
	}
}

// accountResult is the unrounded outcome of one account's analytics
type accountResult struct {
	account      *models.Account
	aggregation  *analytics.Aggregation
	interest     *analytics.InterestResult
	projection   analytics.Projection
	transactions []models.Transaction
	err          error
}

func (s *debtAnalyticsService) ComputeAccountSummary(ctx context.Context, ownerID, accountID uuid.UUID, asOf time.Time) (*models.AccountSummary, error) {
	start := time.Now()
	if err := validateReportRequest(ownerID, asOf); err != nil {
		return nil, err
	}

	snapshot, err := s.ledger.GetAccountSnapshot(ctx, ownerID, accountID, asOf)
	if err != nil {
		s.recordReport("account_summary", "failed", start)
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrNotFound
		}
		slog.Error("failed to read account ledger",
			"owner_id", ownerID,
			"account_id", accountID,
			"error", err)
		return nil, fmt.Errorf("failed to read account ledger: %w", err)
	}

	result := s.analyzeAccount(&snapshot.Account, snapshot.Transactions, asOf)
	if result.err != nil {
		s.recordReport("account_summary", "invalid_ledger", start)
		slog.Warn("account ledger cannot be analyzed",
			"account_id", accountID,
			"error", result.err)
		return nil, result.err
	}

	s.recordReport("account_summary", "success", start)

	return &models.AccountSummary{
		Account:   snapshot.Account,
		Analytics: buildAccountAnalytics(result),
		AsOf:      models.DateOf(asOf).Format(models.DateLayout),
	}, nil
}

func (s *debtAnalyticsService) ComputeDashboardOverview(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*models.DashboardOverview, error) {
	start := time.Now()
	if err := validateReportRequest(ownerID, asOf); err != nil {
		return nil, err
	}

	snapshot, err := s.ledger.GetPortfolioSnapshot(ctx, ownerID, asOf)
	if err != nil {
		s.recordReport("dashboard_overview", "failed", start)
		slog.Error("failed to read portfolio ledger", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to read portfolio ledger: %w", err)
	}

	var active []models.LedgerSnapshot
	for _, l := range snapshot.Ledgers {
		if l.Account.IsActive() {
			active = append(active, l)
		}
	}

	results, err := s.analyzePortfolio(ctx, active, asOf)
	if err != nil {
		s.recordReport("dashboard_overview", "failed", start)
		return nil, err
	}

	overview := &models.DashboardOverview{
		UserID:              ownerID,
		TotalDebt:           decimal.Zero,
		TotalReduction:      decimal.Zero,
		InterestSaved:       decimal.Zero,
		ReductionPercentage: decimal.Zero,
		InterestUnavailable: []uuid.UUID{},
		InvalidAccounts:     []uuid.UUID{},
		AsOf:                models.DateOf(asOf).Format(models.DateLayout),
		GeneratedAt:         s.opts.Now().UTC(),
	}

	totalOpening := decimal.Zero
	var projections []AccountProjection
	var trendInputs []trendLedger

	for _, r := range results {
		if r.err != nil {
			overview.InvalidAccounts = append(overview.InvalidAccounts, r.account.ID)
			continue
		}

		overview.AccountCount++
		overview.TotalDebt = overview.TotalDebt.Add(r.aggregation.LedgerBalance)
		overview.TotalReduction = overview.TotalReduction.Add(r.aggregation.TotalReduction)
		totalOpening = totalOpening.Add(r.aggregation.OpeningBalance)

		if r.interest != nil {
			overview.InterestSaved = overview.InterestSaved.Add(r.interest.InterestSaved)
		} else {
			overview.InterestUnavailable = append(overview.InterestUnavailable, r.account.ID)
		}

		projections = append(projections, AccountProjection{
			AccountID:  r.account.ID,
			Balance:    r.aggregation.LedgerBalance,
			Projection: r.projection,
		})
		trendInputs = append(trendInputs, trendLedger{
			opening:      r.aggregation.OpeningBalance,
			transactions: r.transactions,
		})
	}

	overview.ReductionPercentage = analytics.ProgressPercentage(overview.TotalReduction, totalOpening)
	overview.ProjectedDebtFreeDate = s.opts.ProjectionPolicy.Combine(asOf, projections)

	trends, err := computeTrends(trendInputs, asOf, s.opts.TrendWindowDays, s.opts.Adjustment)
	if err != nil {
		s.recordReport("dashboard_overview", "invalid_ledger", start)
		return nil, err
	}
	overview.Trends = trends

	roundOverview(overview)

	s.recordPartialFailures(overview.InvalidAccounts, overview.InterestUnavailable)
	s.metrics.RecordGauge("portfolio.accounts", float64(len(results)), nil)
	s.recordReport("dashboard_overview", "success", start)

	return overview, nil
}

func (s *debtAnalyticsService) ComputeProgressSummary(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*models.ProgressSummary, error) {
	start := time.Now()
	if err := validateReportRequest(ownerID, asOf); err != nil {
		return nil, err
	}

	snapshot, err := s.ledger.GetPortfolioSnapshot(ctx, ownerID, asOf)
	if err != nil {
		s.recordReport("progress_summary", "failed", start)
		slog.Error("failed to read portfolio ledger", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to read portfolio ledger: %w", err)
	}

	results, err := s.analyzePortfolio(ctx, snapshot.Ledgers, asOf)
	if err != nil {
		s.recordReport("progress_summary", "failed", start)
		return nil, err
	}

	summary := &models.ProgressSummary{
		UserID:          ownerID,
		Accounts:        []models.AccountProgress{},
		InvalidAccounts: []uuid.UUID{},
		AsOf:            models.DateOf(asOf).Format(models.DateLayout),
		GeneratedAt:     s.opts.Now().UTC(),
	}

	var interestUnavailable []uuid.UUID
	for _, r := range results {
		if r.err != nil {
			summary.InvalidAccounts = append(summary.InvalidAccounts, r.account.ID)
			continue
		}
		if r.interest == nil {
			interestUnavailable = append(interestUnavailable, r.account.ID)
		}

		summary.Accounts = append(summary.Accounts, models.AccountProgress{
			AccountID:   r.account.ID,
			AccountName: r.account.Name,
			AccountType: r.account.AccountType,
			IsActive:    r.account.IsActive(),
			Analytics:   buildAccountAnalytics(r),
		})
	}

	s.recordPartialFailures(summary.InvalidAccounts, interestUnavailable)
	s.recordReport("progress_summary", "success", start)

	return summary, nil
}

// analyzePortfolio runs every account through the engine in parallel. Per-account
// failures stay in their slot; only cancellation fails the whole pass.
func (s *debtAnalyticsService) analyzePortfolio(ctx context.Context, ledgers []models.LedgerSnapshot, asOf time.Time) ([]accountResult, error) {
	results := make([]accountResult, len(ledgers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxParallel)

	for i := range ledgers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.analyzeAccount(&ledgers[i].Account, ledgers[i].Transactions, asOf)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("portfolio analytics canceled: %w", err)
	}

	for _, r := range results {
		if r.err != nil {
			slog.Warn("skipping account with invalid ledger",
				"account_id", r.account.ID,
				"error", r.err)
		}
	}

	return results, nil
}

func (s *debtAnalyticsService) analyzeAccount(account *models.Account, transactions []models.Transaction, asOf time.Time) accountResult {
	result := accountResult{account: account, transactions: transactions}

	agg, err := analytics.Aggregate(account, transactions, asOf, s.opts.Adjustment)
	if err != nil {
		result.err = err
		return result
	}
	result.aggregation = agg

	if !agg.LedgerBalance.Equal(account.CurrentBalance) && !asOf.Before(models.DateOf(account.UpdatedAt)) {
		slog.Warn("stored balance differs from ledger balance",
			"account_id", account.ID,
			"stored_balance", account.CurrentBalance.String(),
			"ledger_balance", agg.LedgerBalance.String())
	}

	interest, err := analytics.ComputeInterest(account, agg.OpeningBalance, transactions, asOf)
	if err != nil {
		slog.Warn("interest model unavailable for account",
			"account_id", account.ID,
			"error", err)
	} else {
		result.interest = interest
		if interest.Capped {
			slog.Info("interest baseline horizon capped",
				"account_id", account.ID,
				"cycles", interest.Cycles)
		}
	}

	result.projection = analytics.Project(agg.LedgerBalance, agg.TotalReduction, agg.MonthsElapsed, asOf)
	s.metrics.IncrementCounter("projection.outcome", map[string]string{"status": string(result.projection.Status)})

	return result
}

func (s *debtAnalyticsService) recordReport(report, status string, start time.Time) {
	s.metrics.IncrementCounter("report.generated", map[string]string{"report": report, "status": status})
	s.metrics.RecordProcessingTime("report."+report, time.Since(start))
}

func (s *debtAnalyticsService) recordPartialFailures(invalid, interestUnavailable []uuid.UUID) {
	for range invalid {
		s.metrics.IncrementCounter("report.invalid_account", nil)
	}
	for range interestUnavailable {
		s.metrics.IncrementCounter("report.interest_unavailable", nil)
	}
}

func validateReportRequest(ownerID uuid.UUID, asOf time.Time) error {
	if ownerID == uuid.Nil {
		return ErrInvalidOwner
	}
	if asOf.IsZero() {
		return ErrInvalidAsOf
	}
	return nil
}

func buildAccountAnalytics(r accountResult) models.AccountAnalytics {
	agg := r.aggregation

	out := models.AccountAnalytics{
		OpeningBalance:          roundMoney(agg.OpeningBalance),
		CurrentBalance:          roundMoney(agg.LedgerBalance),
		TotalReduction:          roundMoney(agg.TotalReduction),
		ProgressPercentage:      roundPercent(agg.ProgressPercentage),
		AverageMonthlyReduction: roundMoney(agg.AverageMonthlyReduction),
		TotalPayments:           roundMoney(agg.TotalPayments),
		TotalCharges:            roundMoney(agg.TotalCharges),
		TotalInterest:           roundMoney(agg.TotalInterest),
		MonthsElapsed:           agg.MonthsElapsed,
		ProjectedDebtFreeDate:   r.projection.Date,
		ProjectionStatus:        r.projection.Status,
		MonthlyBuckets:          make([]models.MonthlyBucket, len(agg.Buckets)),
	}

	if r.interest != nil {
		out.InterestSaved = decimal.NewNullDecimal(roundMoney(r.interest.InterestSaved))
	}

	for i, b := range agg.Buckets {
		b.TotalPayments = roundMoney(b.TotalPayments)
		b.TotalCharges = roundMoney(b.TotalCharges)
		b.TotalAdjustments = roundMoney(b.TotalAdjustments)
		b.TotalInterest = roundMoney(b.TotalInterest)
		b.NetChange = roundMoney(b.NetChange)
		b.EndingBalanceEstimate = roundMoney(b.EndingBalanceEstimate)
		out.MonthlyBuckets[i] = b
	}

	return out
}

func roundOverview(o *models.DashboardOverview) {
	o.TotalDebt = roundMoney(o.TotalDebt)
	o.TotalReduction = roundMoney(o.TotalReduction)
	o.InterestSaved = roundMoney(o.InterestSaved)
	o.ReductionPercentage = roundPercent(o.ReductionPercentage)
	o.Trends.DebtChange = roundMoney(o.Trends.DebtChange)
	o.Trends.ReductionChange = roundMoney(o.Trends.ReductionChange)
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(models.MoneyPlaces)
}

func roundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Round(models.PercentPlaces)
}
