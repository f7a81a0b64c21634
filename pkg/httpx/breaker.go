package httpx

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// BreakerState is the circuit breaker state.
type BreakerState int

const (
	// BreakerClosed allows requests through
	BreakerClosed BreakerState = iota
	// BreakerOpen rejects requests until the cooldown elapses
	BreakerOpen
	// BreakerHalfOpen lets probe requests test recovery
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures circuit breaker behavior.
type BreakerConfig struct {
	// FailureThreshold is the consecutive-failure count that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the consecutive-success count in half-open that closes it.
	SuccessThreshold int
	// Cooldown is how long the circuit stays open before a half-open probe.
	Cooldown time.Duration
}

// DefaultBreakerConfig returns the standard per-dependency settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		Cooldown:         30 * time.Second,
	}
}

// Breaker implements the circuit breaker pattern for one downstream.
type Breaker struct {
	name   string
	config BreakerConfig

	mu          sync.Mutex
	state       BreakerState
	failures    int
	successes   int
	lastFailure time.Time
}

// NewBreaker creates a closed breaker.
func NewBreaker(name string, config BreakerConfig) *Breaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = DefaultBreakerConfig().SuccessThreshold
	}
	if config.Cooldown <= 0 {
		config.Cooldown = DefaultBreakerConfig().Cooldown
	}
	return &Breaker{
		name:   name,
		config: config,
		state:  BreakerClosed,
	}
}

// Allow reports whether a request may proceed. When the circuit is open it
// returns an error wrapping ErrServiceUnavailable; once the cooldown elapses
// the breaker moves to half-open and lets the probe through.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed, BreakerHalfOpen:
		return nil
	case BreakerOpen:
		if time.Since(b.lastFailure) >= b.config.Cooldown {
			b.setState(BreakerHalfOpen)
			b.successes = 0
			return nil
		}
		return fmt.Errorf("%w: circuit breaker open for %s, retry in %s",
			ErrServiceUnavailable, b.name,
			(b.config.Cooldown - time.Since(b.lastFailure)).Round(time.Millisecond))
	default:
		return fmt.Errorf("unknown circuit breaker state: %v", b.state)
	}
}

// Mark records a request outcome. Pass nil for success. Context
// cancellations must not be marked; they say nothing about the downstream.
func (b *Breaker) Mark(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.onSuccess()
	} else {
		b.onFailure()
	}
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) onSuccess() {
	switch b.state {
	case BreakerClosed:
		b.failures = 0
	case BreakerHalfOpen:
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.setState(BreakerClosed)
			b.failures = 0
			b.successes = 0
		}
	}
}

func (b *Breaker) onFailure() {
	b.lastFailure = time.Now()

	switch b.state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.config.FailureThreshold {
			b.setState(BreakerOpen)
		}
	case BreakerHalfOpen:
		// Probe failed, back to open
		b.setState(BreakerOpen)
		b.successes = 0
	}
}

func (b *Breaker) setState(next BreakerState) {
	if b.state == next {
		return
	}
	slog.Warn("Circuit breaker state change",
		"dependency", b.name,
		"from", b.state.String(),
		"to", next.String())
	b.state = next
}
