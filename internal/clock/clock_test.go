package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestArmInvalidatesOlderTokens(t *testing.T) {
	c := New(100 * time.Millisecond)

	first := c.Arm(100 * time.Millisecond)
	if !c.Accept(first) {
		t.Fatal("freshly armed token should be accepted")
	}

	second := c.Arm(90 * time.Millisecond)
	if c.Accept(first) {
		t.Error("stale token accepted after re-arm")
	}
	if !c.Accept(second) {
		t.Error("current token rejected")
	}
	if c.Interval() != 90*time.Millisecond {
		t.Errorf("Interval = %v, expected 90ms", c.Interval())
	}
	if c.Current() != second {
		t.Errorf("Current = %d, expected %d", c.Current(), second)
	}
}

func TestNonPositiveIntervalFallsBack(t *testing.T) {
	c := New(0)
	if c.Interval() != DefaultInterval {
		t.Errorf("Interval = %v, expected %v", c.Interval(), DefaultInterval)
	}
	c.Arm(-time.Second)
	if c.Interval() != DefaultInterval {
		t.Errorf("Interval = %v, expected %v", c.Interval(), DefaultInterval)
	}
}

func TestRunStopsWhenStepDeclines(t *testing.T) {
	calls := 0
	err := Run(context.Background(), time.Millisecond, func(context.Context) (time.Duration, bool) {
		calls++
		return time.Millisecond, calls < 5
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 5 {
		t.Errorf("step called %d times, expected 5", calls)
	}
}

func TestRunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Run(ctx, time.Millisecond, func(context.Context) (time.Duration, bool) {
		calls++
		if calls == 3 {
			cancel()
			return time.Hour, true
		}
		return time.Millisecond, true
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if calls != 3 {
		t.Errorf("step called %d times after cancel, expected 3", calls)
	}
}
