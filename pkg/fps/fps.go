// Package fps measures and limits frame rates.
//
// A [Counter] is ticked once per frame and republishes its rate twice a
// second. A [Limiter] pads each frame out to a target rate.
//
//	counter := fps.NewCounter(nil)
//	limiter := fps.NewLimiter(nil)
//	for running {
//		draw()
//		if counter.Tick() {
//			status(counter.String())
//		}
//		limiter.Wait(60)
//	}
package fps

import (
	"fmt"
	"time"

	"github.com/go-drift/sand/pkg/clock"
)

const (
	// Window is how long a Counter accumulates frames before recomputing.
	Window = 500 * time.Millisecond

	// HistoryLen is the number of frame durations a Counter retains.
	HistoryLen = 120

	// MaxFrame caps the frame length a Limiter will wait out.
	MaxFrame = time.Second
)

// Counter counts frames and reports the rate over the last window.
type Counter struct {
	frames  int
	rate    float64
	format  string
	window  *clock.Timer
	frame   *clock.Timer
	history []time.Duration
}

// NewCounter returns a counter reading from c. A nil c selects clock.System.
func NewCounter(c clock.Clock) *Counter {
	return &Counter{
		format:  "0 fps",
		window:  clock.NewTimer(c),
		frame:   clock.NewTimer(c),
		history: make([]time.Duration, 0, HistoryLen),
	}
}

// Tick records one frame. It returns true when at least [Window] has passed
// since the last recomputation and the rate was refreshed.
func (f *Counter) Tick() bool {
	f.frames++

	if len(f.history) == HistoryLen {
		copy(f.history, f.history[1:])
		f.history = f.history[:HistoryLen-1]
	}
	f.history = append(f.history, f.frame.Elapsed())
	f.frame.Reset()

	elapsed := f.window.Elapsed()
	if elapsed < Window {
		return false
	}

	sec := elapsed.Seconds()
	f.rate = float64(f.frames) / sec
	if f.rate >= 1 {
		f.format = fmt.Sprintf("%d fps", int(f.rate))
	} else {
		f.format = fmt.Sprintf("%d spf", int(sec/float64(f.frames)))
	}
	f.frames = 0
	f.window.Reset()
	return true
}

// FPS returns the rate computed at the last refresh.
func (f *Counter) FPS() float64 {
	return f.rate
}

// String returns the last rate as "N fps", or "N spf" when frames take
// longer than a second.
func (f *Counter) String() string {
	return f.format
}

// History returns a copy of the most recent frame durations, oldest first.
func (f *Counter) History() []time.Duration {
	out := make([]time.Duration, len(f.history))
	copy(out, f.history)
	return out
}

// Limiter holds frames to a target rate.
type Limiter struct {
	// Sleep blocks for the given duration. Defaults to time.Sleep.
	Sleep func(time.Duration)

	timer *clock.Timer
}

// NewLimiter returns a limiter reading from c. A nil c selects clock.System.
func NewLimiter(c clock.Clock) *Limiter {
	return &Limiter{
		Sleep: time.Sleep,
		timer: clock.NewTimer(c),
	}
}

// Wait sleeps out whatever remains of a 1/rate frame since the previous call,
// then starts the next frame. Frames longer than [MaxFrame] are capped. A rate
// of zero or less returns immediately and leaves the frame running.
func (l *Limiter) Wait(rate float64) {
	if !(rate > 0) {
		return
	}
	frame := MaxFrame
	if rate > 1 {
		frame = time.Duration(float64(time.Second) / rate)
	}
	if remaining := frame - l.timer.Elapsed(); remaining > 0 {
		l.Sleep(remaining)
	}
	l.timer.Reset()
}
