// Package clock provides time measurement primitives for interactive
// applications.
//
// # Core Components
//
//   - [Timer]: a monotonic stopwatch reporting seconds since its last reset.
//
//   - [RTC]: a logical wall clock anchored at an absolute Unix second. It can be
//     paused, resumed, sped up or slowed down, and round-trips through the
//     "YYYY-MM-DD HH:MM:SS" text form.
//
//   - [Process]: the application's own clock context. It records the process
//     epoch, supports deliberate time travel through [Process.Lapse] and can
//     correct itself against NTP servers.
//
// Every component reads time through a [Clock]. Production code uses [System];
// tests inject a fake to step time deterministically.
//
// # Basic Usage
//
//	rtc := clock.NewNow()
//	_ = rtc.SetSpeed(2) // game time runs twice as fast
//
//	// Once per frame
//	now := rtc.Update()
//
//	// Menu opened
//	rtc.Pause()
//	...
//	rtc.Resume()
package clock

import "time"

// Clock provides the current time. The system implementation returns
// time.Now, whose monotonic reading keeps [Timer] immune to wall-clock
// adjustments.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the real time source.
var System Clock = systemClock{}

// Option configures the clocks built by this package.
type Option func(*options)

type options struct {
	clock Clock
	loc   *time.Location
}

// WithClock sets the time source. A nil Clock selects [System].
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLocation sets the location used for calendar breakdown and for parsing
// serialized times. A nil location selects time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: System, loc: time.Local}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = System
	}
	if o.loc == nil {
		o.loc = time.Local
	}
	return o
}
