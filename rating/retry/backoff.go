package retry

import (
	"time"
)

// ExponentialBackoff doubles the base delay for every completed attempt and
// clamps the result to maxBackoff. The schedule is fixed, no jitter is
// applied, so the same (attempt, config) pair always yields the same delay.
type ExponentialBackoff struct {
	baseDelay  time.Duration
	maxBackoff time.Duration
}

func NewExponentialBackoff(baseDelay, maxBackoff time.Duration) *ExponentialBackoff {
	return &ExponentialBackoff{
		baseDelay:  baseDelay,
		maxBackoff: maxBackoff,
	}
}

func (b *ExponentialBackoff) BackoffDelay(attempt int, _ error) (time.Duration, error) {
	delay := b.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		// delay <= 0 catches overflow for large attempt numbers
		if delay >= b.maxBackoff || delay <= 0 {
			return b.maxBackoff, nil
		}
	}
	if delay > b.maxBackoff {
		delay = b.maxBackoff
	}
	return delay, nil
}
