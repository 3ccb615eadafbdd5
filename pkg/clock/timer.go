package clock

import "time"

// Timer measures elapsed time since its last reset.
//
// Readings never go backward between resets: a source that reports a time
// earlier than the start yields zero. Use [NewTimer]; the zero value has no
// start point.
type Timer struct {
	clock Clock
	start time.Time
}

// NewTimer creates a running timer reading from c. A nil c selects [System].
func NewTimer(c Clock) *Timer {
	if c == nil {
		c = System
	}
	t := &Timer{clock: c}
	t.Reset()
	return t
}

// Reset makes the current instant the new zero point.
func (t *Timer) Reset() {
	t.start = t.clock.Now()
}

// Elapsed returns the time since the last reset.
func (t *Timer) Elapsed() time.Duration {
	d := t.clock.Now().Sub(t.start)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedSeconds returns the time since the last reset in seconds.
func (t *Timer) ElapsedSeconds() float64 {
	return t.Elapsed().Seconds()
}

// Milliseconds returns the time since the last reset in milliseconds.
func (t *Timer) Milliseconds() float64 {
	return float64(t.Elapsed()) / float64(time.Millisecond)
}

// Microseconds returns the time since the last reset in microseconds.
func (t *Timer) Microseconds() float64 {
	return float64(t.Elapsed()) / float64(time.Microsecond)
}

// Nanoseconds returns the time since the last reset in nanoseconds.
func (t *Timer) Nanoseconds() float64 {
	return float64(t.Elapsed())
}
