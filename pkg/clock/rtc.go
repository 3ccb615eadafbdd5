package clock

import (
	"math"
	"time"

	"github.com/go-drift/sand/pkg/errors"
)

// RTC is a logical wall clock.
//
// An RTC holds an anchor (an absolute Unix second) and an inner [Timer].
// Scaled time accumulated on the timer is added to the anchor when the clock
// is folded by [RTC.Update] or [RTC.Pause]:
//
//	Elapsed()        = carry + speed * timer
//	CurrentInstant() = anchor + floor(Elapsed())
//
// carry is the sub-second remainder of the previous fold, so frequent updates
// do not lose time. While paused the timer keeps running but its reading is
// discarded on [RTC.Resume].
//
// RTC is a single-owner object and is not safe for concurrent mutation.
type RTC struct {
	anchor int64
	speed  float64
	held   bool
	carry  float64
	timer  *Timer
	clock  Clock
	loc    *time.Location
}

// New creates a running clock anchored at instant (Unix seconds) with speed 1.
func New(instant int64, opts ...Option) *RTC {
	o := buildOptions(opts)
	c := &RTC{
		speed: 1,
		clock: o.clock,
		loc:   o.loc,
		timer: NewTimer(o.clock),
	}
	c.Set(instant)
	return c
}

// NewNow creates a running clock anchored at the current wall-clock second of
// its time source.
func NewNow(opts ...Option) *RTC {
	o := buildOptions(opts)
	return New(o.clock.Now().Unix(), opts...)
}

// init prepares a zero RTC, as produced by decoding into a struct field. A
// zero RTC starts at the epoch with speed 1, in the local zone, and its timer
// starts on first use.
func (c *RTC) init() {
	if c.clock == nil {
		c.clock = System
	}
	if c.loc == nil {
		c.loc = time.Local
	}
	if c.timer == nil {
		c.timer = NewTimer(c.clock)
	}
	if c.speed <= 0 {
		c.speed = 1
	}
}

// Set re-anchors the clock at instant, clears the pause flag and restarts the
// inner timer. The speed factor is kept.
func (c *RTC) Set(instant int64) {
	c.init()
	c.anchor = instant
	c.held = false
	c.carry = 0
	c.timer.Reset()
}

// Reset re-anchors the clock at the Unix epoch.
func (c *RTC) Reset() {
	c.Set(0)
}

// SetSpeed changes how fast the clock runs relative to real time. The factor
// applies immediately, including to time not yet folded into the anchor. It
// does not scale the sub-second carry left by the last fold, so after an
// [RTC.Update] doubling the speed does not exactly double [RTC.Elapsed]. Call
// Update before SetSpeed for a clean switch.
// Factors that are not strictly positive and finite are rejected with
// [errors.KindInvalidArgument] and leave the clock unchanged.
func (c *RTC) SetSpeed(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return errors.New("clock.RTC.SetSpeed", errors.KindInvalidArgument,
			"speed factor %v must be positive and finite", factor)
	}
	c.init()
	c.speed = factor
	return nil
}

// Speed returns the current speed factor.
func (c *RTC) Speed() float64 {
	c.init()
	return c.speed
}

// Pause freezes the clock at its current instant. Pausing a paused clock
// does nothing.
func (c *RTC) Pause() {
	c.init()
	if c.held {
		return
	}
	c.fold()
	c.held = true
}

// Resume restarts a paused clock and returns the scaled seconds accumulated
// since the last fold, without folding them. Time spent paused is never
// counted. Resuming a running clock only reports the elapsed value.
func (c *RTC) Resume() float64 {
	c.init()
	if c.held {
		c.held = false
		c.timer.Reset()
	}
	return c.Elapsed()
}

// Held reports whether the clock is paused.
func (c *RTC) Held() bool {
	return c.held
}

// Update folds the elapsed scaled time into the anchor and returns the new
// anchor. A paused clock returns its frozen anchor unchanged.
func (c *RTC) Update() int64 {
	c.init()
	if c.held {
		return c.anchor
	}
	c.fold()
	return c.anchor
}

func (c *RTC) fold() {
	total := c.Elapsed()
	whole := math.Floor(total)
	c.anchor += int64(whole)
	c.carry = total - whole
	c.timer.Reset()
}

// Elapsed returns the scaled seconds accumulated since the last fold.
func (c *RTC) Elapsed() float64 {
	c.init()
	if c.held {
		return c.carry
	}
	return c.carry + c.speed*c.timer.ElapsedSeconds()
}

// Anchor returns the instant last set or folded, in Unix seconds.
func (c *RTC) Anchor() int64 {
	return c.anchor
}

// CurrentInstant returns the clock's instant in Unix seconds without
// mutating it. A paused clock reports its frozen anchor.
func (c *RTC) CurrentInstant() int64 {
	if c.held {
		return c.anchor
	}
	return c.anchor + int64(math.Floor(c.Elapsed()))
}

// Time returns CurrentInstant as a time.Time in the clock's location.
func (c *RTC) Time() time.Time {
	return time.Unix(c.CurrentInstant(), 0).In(c.Location())
}

// Location returns the location used for calendar breakdown.
func (c *RTC) Location() *time.Location {
	c.init()
	return c.loc
}

func (c *RTC) anchorTime() time.Time {
	return time.Unix(c.anchor, 0).In(c.Location())
}

// Year returns the calendar year of the anchor.
func (c *RTC) Year() int { return c.anchorTime().Year() }

// Month returns the month of the anchor, 1 through 12.
func (c *RTC) Month() int { return int(c.anchorTime().Month()) }

// Day returns the day of month of the anchor.
func (c *RTC) Day() int { return c.anchorTime().Day() }

// Hour returns the hour of the anchor, 0 through 23.
func (c *RTC) Hour() int { return c.anchorTime().Hour() }

// Minute returns the minute of the anchor.
func (c *RTC) Minute() int { return c.anchorTime().Minute() }

// Second returns the second of the anchor.
func (c *RTC) Second() int { return c.anchorTime().Second() }

// Format formats the anchor with a time.Format layout.
func (c *RTC) Format(layout string) string {
	return c.anchorTime().Format(layout)
}
