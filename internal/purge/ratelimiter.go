package purge

import (
	"context"
	"time"
)

// RateLimiter paces remote mutations. Wait blocks until the next call may
// be issued or the context is cancelled.
type RateLimiter interface {
	Wait(ctx context.Context)
}

type fixedDelay struct {
	delay time.Duration
}

func (l fixedDelay) Wait(ctx context.Context) {
	if l.delay <= 0 {
		return
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// NewFixedDelay returns a limiter that sleeps a constant duration between
// calls. Not adaptive; a smarter strategy can replace it without touching
// the actions.
func NewFixedDelay(delay time.Duration) RateLimiter {
	return fixedDelay{delay: delay}
}
