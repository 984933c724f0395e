package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"statement-analyzer/internal/models"
)

var ErrBrokerUnavailable = errors.New("event broker unavailable, publishing suspended")

// Publisher is implemented by AMQPPublisher and NoopPublisher
type Publisher interface {
	PublishLedgerIngested(ctx context.Context, event *models.LedgerIngestedEvent) error
	Close() error
}

// BreakerState is the state of a publish circuit
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// Breaker stops publish attempts after MaxFailures consecutive failures and
// lets a trial through once ResetTimeout has passed since the last failure.
// HalfOpenMaxSucc trial successes close it again; one trial failure reopens it.
type Breaker struct {
	mu                sync.Mutex
	config            BreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewBreaker(config BreakerConfig) *Breaker {
	return &Breaker{
		config: config,
		state:  BreakerClosed,
		now:    time.Now,
	}
}

// Allow reports whether a publish may be attempted
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen && b.now().Sub(b.lastFailureTime) > b.config.ResetTimeout {
		b.setState(BreakerHalfOpen)
	}
	return b.state != BreakerOpen
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.setState(BreakerClosed)
		}
	case BreakerClosed:
		b.failures = 0
	}
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureTime = b.now()

	switch b.state {
	case BreakerHalfOpen:
		b.setState(BreakerOpen)
	case BreakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.setState(BreakerOpen)
		}
	}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// setState must be called with mu held
func (b *Breaker) setState(state BreakerState) {
	if state == b.state {
		return
	}
	slog.Warn("Event publisher circuit state changed", "from", b.state.String(), "to", state.String())

	b.state = state
	b.halfOpenSuccesses = 0
	if state == BreakerClosed {
		b.failures = 0
	}
}

// GuardedPublisher fails fast with ErrBrokerUnavailable while the broker keeps
// failing, so ingests are not held up by publish timeouts.
type GuardedPublisher struct {
	next    Publisher
	breaker *Breaker
}

func NewGuardedPublisher(next Publisher, breaker *Breaker) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker}
}

func (p *GuardedPublisher) PublishLedgerIngested(ctx context.Context, event *models.LedgerIngestedEvent) error {
	if !p.breaker.Allow() {
		return ErrBrokerUnavailable
	}

	if err := p.next.PublishLedgerIngested(ctx, event); err != nil {
		p.breaker.RecordFailure()
		return err
	}
	p.breaker.RecordSuccess()
	return nil
}

func (p *GuardedPublisher) Close() error {
	return p.next.Close()
}
