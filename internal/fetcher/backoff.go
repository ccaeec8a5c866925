package fetcher

import (
	"context"
	"time"
)

// backoff produces the delay schedule between retry attempts: an initial
// delay multiplied after every attempt and capped at a maximum. A
// multiplier of 1.0 yields a fixed delay.
type backoff struct {
	delay      time.Duration
	maxDelay   time.Duration
	multiplier float64
}

// next returns the current delay and advances the schedule.
func (b *backoff) next() time.Duration {
	current := b.delay

	scaled := time.Duration(float64(b.delay) * b.multiplier)
	if scaled > b.maxDelay {
		scaled = b.maxDelay
	}
	b.delay = scaled

	return current
}

// sleep waits for the given duration or until the context is cancelled.
// Returns the context error when cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
