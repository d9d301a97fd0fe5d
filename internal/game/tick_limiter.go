package game

import "time"

// TickLimiter paces the simulation loop to a fixed tick rate.
type TickLimiter struct {
	target time.Duration
	next   time.Time
}

// NewTickLimiter creates a limiter for rate ticks per second. A rate <= 0
// disables pacing.
func NewTickLimiter(rate int) *TickLimiter {
	l := &TickLimiter{}
	if rate > 0 {
		l.target = time.Second / time.Duration(rate)
	}
	return l
}

// Period returns the pacing interval, zero when unlimited.
func (l *TickLimiter) Period() time.Duration {
	return l.target
}

// Wait blocks until the next tick is due. It sleeps most of the interval and
// spins the final stretch for precision.
func (l *TickLimiter) Wait() {
	if l.target <= 0 {
		return
	}

	if l.next.IsZero() {
		l.next = time.Now().Add(l.target)
	} else {
		l.next = l.next.Add(l.target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// Resync after a hitch so we don't burst to catch up
	if late := -time.Until(l.next); late > l.target {
		l.next = time.Now().Add(l.target)
	}
}
