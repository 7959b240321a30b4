package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
)

type CircuitBreakerState int

const (
	StateClosed CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures  int
	ResetTimeout time.Duration
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:  5,
		ResetTimeout: 30 * time.Second,
	}
}

// NewLedgerBreakerConfig reads the ledger breaker thresholds, keeping defaults for unset values
func NewLedgerBreakerConfig(cfg *config.DatabaseConfig) CircuitBreakerConfig {
	breakerConfig := DefaultCircuitBreakerConfig()
	if cfg.BreakerMaxFailures > 0 {
		breakerConfig.MaxFailures = cfg.BreakerMaxFailures
	}
	if cfg.BreakerResetTimeout > 0 {
		breakerConfig.ResetTimeout = cfg.BreakerResetTimeout
	}
	return breakerConfig
}

// CircuitBreaker counts consecutive failures of one dependency. Once open it
// rejects calls until ResetTimeout has passed, then admits a single trial call whose
// outcome closes or reopens it. Other callers are rejected while it runs.
type CircuitBreaker struct {
	mu              sync.RWMutex
	name            string
	config          CircuitBreakerConfig
	state           CircuitBreakerState
	failures        int
	trialInFlight   bool
	lastFailureTime time.Time
	now             func() time.Time
}

func NewCircuitBreaker(name string, config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		name:   name,
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// IsOpen reports whether a call must be rejected. A false result in the half-open
// state hands the caller the trial call, which must end in RecordSuccess, RecordFailure or ReleaseTrial.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if !cb.shouldTransitionToHalfOpen() {
			return true
		}
		cb.setState(StateHalfOpen)
		cb.trialInFlight = true
		return false
	case StateHalfOpen:
		if cb.trialInFlight {
			return true
		}
		cb.trialInFlight = true
		return false
	default:
		return false
	}
}

func (cb *CircuitBreaker) shouldTransitionToHalfOpen() bool {
	return cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.setState(StateClosed)
		cb.failures = 0
		cb.trialInFlight = false
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.setState(StateOpen)
		cb.trialInFlight = false
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.setState(StateOpen)
		}
	}
}

// ReleaseTrial frees the half-open slot without a verdict, for calls that ended
// for reasons unrelated to the dependency's health
func (cb *CircuitBreaker) ReleaseTrial() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateHalfOpen {
		cb.trialInFlight = false
	}
}

// setState must be called with mu held
func (cb *CircuitBreaker) setState(next CircuitBreakerState) {
	if cb.state == next {
		return
	}
	slog.Warn("circuit breaker state change",
		"breaker", cb.name,
		"old_state", cb.state.String(),
		"new_state", next.String(),
		"failures", cb.failures)
	cb.state = next
}

func (cb *CircuitBreaker) GetState() CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
