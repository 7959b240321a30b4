package services

import (
	"context"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtAnalyticsServiceInterface assembles debt reduction reports from one ledger snapshot per call.
// Every method takes the reporting instant explicitly.
type DebtAnalyticsServiceInterface interface {
	// ComputeAccountSummary returns one account with its analytics
	ComputeAccountSummary(ctx context.Context, ownerID, accountID uuid.UUID, asOf time.Time) (*models.AccountSummary, error)

	// ComputeDashboardOverview aggregates every active account of the owner
	ComputeDashboardOverview(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*models.DashboardOverview, error)

	// ComputeProgressSummary lists per-account analytics for every account of the owner
	ComputeProgressSummary(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*models.ProgressSummary, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// LedgerHistoryGeneratorInterface fabricates a plausible ledger for demo accounts
type LedgerHistoryGeneratorInterface interface {
	// GenerateHistory returns entries dated within [from, to] in posting order
	// and the balance they leave the account at, starting from its opening balance.
	GenerateHistory(account *models.Account, from, to time.Time) ([]models.Transaction, decimal.Decimal)
}
