package testing

import (
	"testing"
	"time"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_AdvanceSeconds(t *testing.T) {
	clk := NewFakeClockAt(1_600_000_000)
	clk.AdvanceSeconds(2.5)

	if got := clk.Now().Sub(time.Unix(1_600_000_000, 0)); got != 2500*time.Millisecond {
		t.Errorf("expected 2.5s elapsed, got %v", got)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeClock_Sleep(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Sleep(-time.Second)
	clk.Sleep(time.Second)

	if got := clk.Now().Sub(start); got != time.Second {
		t.Errorf("expected 1s elapsed, got %v", got)
	}
}
