package backoff

import (
	"context"
	"time"
)

// Strategy computes the wait before the next attempt from the number of
// consecutive failures so far
type Strategy interface {
	Duration(failures int, start time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	failures     int
	strategy     Strategy
}

func New(strategy Strategy, start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return b
}

// Reset is called after a successful attempt
func (b *Backoff) Reset() {
	b.failures = 0
	b.LastDuration = 0
	b.NextDuration = b.next()
}

// Failures returns the number of Backoff calls since the last Reset
func (b *Backoff) Failures() int {
	return b.failures
}

// Backoff sleeps NextDuration, or returns ctx.Err() if ctx ends first
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	b.failures++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.next()
	return nil
}

func (b *Backoff) next() time.Duration {
	d := b.strategy.Duration(b.failures, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

type exponential struct{}

func (exponential) Duration(failures int, start time.Duration) time.Duration {
	if failures > 30 {
		failures = 30
	}
	return start << uint(failures)
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

type linear struct{}

func (linear) Duration(failures int, start time.Duration) time.Duration {
	return time.Duration(failures+1) * start
}

func NewLinear(start time.Duration, limit time.Duration) *Backoff {
	return New(linear{}, start, limit)
}
