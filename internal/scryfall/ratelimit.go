package scryfall

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/cardsage/scryfall-search/internal/metrics"
)

const maxBackoff = 5 * time.Minute

// Limiter paces outgoing requests and applies exponential backoff
// after throttling responses from the API. Scryfall asks clients to
// keep 75-100ms between requests.
type Limiter struct {
	limiter *rate.Limiter

	mu           sync.Mutex
	failures     int
	backoffUntil time.Time
	now          func() time.Time
	sleep        func(context.Context, time.Duration) error
}

// NewLimiter creates a limiter enforcing at least interval between
// requests.
func NewLimiter(interval time.Duration) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Acquire blocks until a request may be sent, honoring both the
// pacing interval and any active backoff window.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	wait := time.Duration(0)
	if until := l.backoffUntil; until.After(l.now()) {
		wait = until.Sub(l.now())
	}
	l.mu.Unlock()

	if wait > 0 {
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
	return l.limiter.Wait(ctx)
}

// RecordSuccess clears the failure streak and any backoff window.
func (l *Limiter) RecordSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = 0
	l.backoffUntil = time.Time{}
}

// RecordFailure notes a failed request. Throttling and gateway status
// codes start an exponential backoff window.
func (l *Limiter) RecordFailure(statusCode int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures++

	switch statusCode {
	case 429, 502, 503, 504:
		backoff := time.Duration(1<<uint(l.failures)) * time.Second
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
		l.backoffUntil = l.now().Add(backoff)
	}
}

// BackoffRemaining reports how long the current backoff window has
// left, zero when not backing off.
func (l *Limiter) BackoffRemaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	if remaining := l.backoffUntil.Sub(l.now()); remaining > 0 {
		return remaining
	}
	return 0
}

// ErrCircuitOpen is returned when the circuit breaker rejects a
// request without attempting it.
var ErrCircuitOpen = errors.New("scryfall: circuit breaker is open")

type breakerState int

const (
	stateClosed breakerState = iota
	stateHalfOpen
	stateOpen
)

func (s breakerState) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// CircuitBreaker stops hammering the API after a run of failures and
// probes again once the recovery timeout has passed.
type CircuitBreaker struct {
	failureThreshold int
	recoveryTimeout  time.Duration

	mu          sync.Mutex
	state       breakerState
	failures    int
	lastFailure time.Time
	now         func() time.Time
}

func NewCircuitBreaker(failureThreshold int, recoveryTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		recoveryTimeout:  recoveryTimeout,
		now:              time.Now,
	}
}

// Allow reports whether a request may proceed. An open circuit
// transitions to half-open once the recovery timeout elapses.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateOpen {
		if b.now().Sub(b.lastFailure) > b.recoveryTimeout {
			b.setState(stateHalfOpen)
		} else {
			return ErrCircuitOpen
		}
	}
	return nil
}

// RecordSuccess closes a half-open circuit and resets the failure
// count.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	if b.state == stateHalfOpen {
		b.setState(stateClosed)
	}
}

// RecordFailure counts a failure and opens the circuit at the
// threshold.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	b.lastFailure = b.now()
	if b.failures >= b.failureThreshold {
		b.setState(stateOpen)
	}
}

func (b *CircuitBreaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.String()
}

func (b *CircuitBreaker) setState(s breakerState) {
	b.state = s
	metrics.CircuitBreakerState.Set(float64(s))
}
