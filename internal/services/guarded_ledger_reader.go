package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/repositories"

	"github.com/google/uuid"
)

// ErrLedgerUnavailable is returned without touching the database while the ledger breaker is open
var ErrLedgerUnavailable = errors.New("ledger store is temporarily unavailable")

type guardedLedgerReader struct {
	next    repositories.LedgerReaderInterface
	breaker *CircuitBreaker
}

// NewGuardedLedgerReader puts a circuit breaker in front of the ledger store.
// Missing accounts and canceled requests do not count as store failures.
func NewGuardedLedgerReader(next repositories.LedgerReaderInterface, breaker *CircuitBreaker) repositories.LedgerReaderInterface {
	return &guardedLedgerReader{next: next, breaker: breaker}
}

func (g *guardedLedgerReader) GetAccountSnapshot(ctx context.Context, ownerID, accountID uuid.UUID, asOf time.Time) (*models.LedgerSnapshot, error) {
	if g.breaker.IsOpen() {
		return nil, ErrLedgerUnavailable
	}

	snapshot, err := g.next.GetAccountSnapshot(ctx, ownerID, accountID, asOf)
	g.record(err)
	return snapshot, err
}

func (g *guardedLedgerReader) GetPortfolioSnapshot(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*models.PortfolioSnapshot, error) {
	if g.breaker.IsOpen() {
		return nil, ErrLedgerUnavailable
	}

	snapshot, err := g.next.GetPortfolioSnapshot(ctx, ownerID, asOf)
	g.record(err)
	return snapshot, err
}

func (g *guardedLedgerReader) record(err error) {
	switch {
	case err == nil, errors.Is(err, repositories.ErrAccountNotFound):
		g.breaker.RecordSuccess()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		g.breaker.ReleaseTrial()
	default:
		g.breaker.RecordFailure()
	}
}
