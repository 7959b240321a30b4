package services

import (
	"fmt"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/analytics"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountProjection is one account's input to the portfolio projection
type AccountProjection struct {
	AccountID  uuid.UUID
	Balance    decimal.Decimal
	Projection analytics.Projection
}

// ProjectionPolicy folds per-account debt-free dates into a single portfolio date
type ProjectionPolicy interface {
	Name() string
	Combine(asOf time.Time, accounts []AccountProjection) *time.Time
}

// NewProjectionPolicy resolves a policy by its configuration name
func NewProjectionPolicy(name string) (ProjectionPolicy, error) {
	switch name {
	case "", config.ProjectionPolicyAll:
		return allAccountsPolicy{}, nil
	case config.ProjectionPolicySoonest:
		return soonestAccountPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown projection policy %q", name)
	}
}

// allAccountsPolicy reports the portfolio debt-free only once every account is
type allAccountsPolicy struct{}

func (allAccountsPolicy) Name() string { return config.ProjectionPolicyAll }

func (allAccountsPolicy) Combine(asOf time.Time, accounts []AccountProjection) *time.Time {
	if len(accounts) == 0 {
		return nil
	}

	latest := models.DateOf(asOf)
	for _, a := range accounts {
		if !a.Balance.IsPositive() {
			continue
		}
		if a.Projection.Date == nil {
			return nil
		}
		if a.Projection.Date.After(latest) {
			latest = *a.Projection.Date
		}
	}
	return &latest
}

// soonestAccountPolicy reports the first account expected to reach zero
type soonestAccountPolicy struct{}

func (soonestAccountPolicy) Name() string { return config.ProjectionPolicySoonest }

func (soonestAccountPolicy) Combine(asOf time.Time, accounts []AccountProjection) *time.Time {
	if len(accounts) == 0 {
		return nil
	}

	var soonest *time.Time
	owing := false
	for _, a := range accounts {
		if !a.Balance.IsPositive() {
			continue
		}
		owing = true
		if a.Projection.Date == nil {
			continue
		}
		if soonest == nil || a.Projection.Date.Before(*soonest) {
			d := *a.Projection.Date
			soonest = &d
		}
	}

	if !owing {
		today := models.DateOf(asOf)
		return &today
	}
	return soonest
}
