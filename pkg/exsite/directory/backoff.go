package directory

import (
	"math"
	"time"
)

// Backoff maps a 1-indexed attempt number to the wait before the next attempt.
type Backoff struct {
	Base time.Duration
	Max  time.Duration
}

// DefaultBackoff waits 1.5s, 3s, 6s, ... capped at 30s.
func DefaultBackoff() Backoff {
	return Backoff{
		Base: 1500 * time.Millisecond,
		Max:  30 * time.Second,
	}
}

// defaultMaxDelay caps the wait when Max is unset.
const defaultMaxDelay = 30 * time.Second

// Delay returns min(Max, Base * 2^(attempt-1)). A zero Max caps at 30s.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	limit := b.Max
	if limit <= 0 {
		limit = defaultMaxDelay
	}
	d := float64(b.Base) * math.Pow(2, float64(attempt-1))
	if d > float64(limit) {
		return limit
	}
	return time.Duration(d)
}
