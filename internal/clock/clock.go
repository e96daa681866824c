// Package clock decides when a session ticks.
//
// A Clock hands out a generation Token every time it is armed. A host that
// schedules timers (tea.Tick, time.Timer) tags each pending timer with the
// token it got and drops fired timers whose token is no longer current, so a
// re-arm after an interval change or restart never produces a second live
// timer and never loses the one that is current.
package clock

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used whenever a non-positive interval is requested.
const DefaultInterval = time.Second / 60

// Token identifies one arming of a Clock.
type Token uint64

// Clock tracks the current tick interval and the live timer generation.
// It is safe for concurrent use.
type Clock struct {
	mu       sync.Mutex
	interval time.Duration
	gen      Token
}

// New creates a clock with the given starting interval. Nothing is armed yet.
func New(interval time.Duration) *Clock {
	return &Clock{interval: normalize(interval)}
}

// Arm records a new interval and invalidates every previously issued token.
func (c *Clock) Arm(interval time.Duration) Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.interval = normalize(interval)
	c.gen++
	return c.gen
}

// Accept reports whether a fired timer tagged with t is the live one.
func (c *Clock) Accept(t Token) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return t == c.gen
}

// Interval returns the interval of the most recent arming.
func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Current returns the live token.
func (c *Clock) Current() Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// StepFunc runs one tick and returns the interval until the next one.
// Returning false stops the loop.
type StepFunc func(ctx context.Context) (next time.Duration, ok bool)

// Run drives step on a single timer until step returns false or ctx is done.
// The timer is re-armed only after step returns, with the interval step
// reported, so ticks never overlap and every interval change applies from
// the following tick on.
func Run(ctx context.Context, first time.Duration, step StepFunc) error {
	timer := time.NewTimer(normalize(first))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			next, ok := step(ctx)
			if !ok {
				return nil
			}
			timer.Reset(normalize(next))
		}
	}
}

func normalize(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultInterval
	}
	return d
}
