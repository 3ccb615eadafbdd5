package tween

import (
	"fmt"
	"time"

	"github.com/go-drift/sand/pkg/clock"
)

// Status represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is StatusForward or StatusReverse.
// When stopped, status is StatusDismissed (at 0) or StatusCompleted (at 1).
type Status int

const (
	// StatusDismissed means the animation is stopped at the lower bound.
	StatusDismissed Status = iota
	// StatusForward means the animation is playing toward the upper bound.
	StatusForward
	// StatusReverse means the animation is playing toward the lower bound.
	StatusReverse
	// StatusCompleted means the animation is stopped at the upper bound.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives an animation by producing values over time.
//
// The controller moves Value from LowerBound (default 0.0) to UpperBound
// (default 1.0) over Duration, eased by Curve through its lookup table.
// Progress is measured with a [clock.Timer]; call Step once per frame to
// advance it.
//
// Use [Tween] to map the value to other ranges or types.
type Controller struct {
	// Value is the current animation value.
	Value float64

	// Duration is the length of a full animation.
	Duration time.Duration

	// Curve eases progress. Undefined means linear.
	Curve Curve

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	status          Status
	timer           *clock.Timer
	running         bool
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller with the given duration, timed by c.
// A nil c selects clock.System.
func NewController(duration time.Duration, c clock.Clock) *Controller {
	return &Controller{
		Duration:        duration,
		LowerBound:      0,
		UpperBound:      1,
		Curve:           Linear,
		status:          StatusDismissed,
		timer:           clock.NewTimer(c),
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward animates from the current value to the upper bound.
func (c *Controller) Forward() {
	c.animateTo(c.UpperBound, StatusForward)
}

// Reverse animates from the current value to the lower bound.
func (c *Controller) Reverse() {
	c.animateTo(c.LowerBound, StatusReverse)
}

// AnimateTo animates to a specific target value.
func (c *Controller) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, StatusForward)
	} else {
		c.animateTo(target, StatusReverse)
	}
}

func (c *Controller) animateTo(target float64, direction Status) {
	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)
	c.timer.Reset()
	c.running = true
}

// Step advances a running animation to the timer's current reading and
// notifies listeners. It does nothing when the controller is idle.
func (c *Controller) Step() {
	if !c.running {
		return
	}
	c.tick(c.timer.Elapsed())
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.stop()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.Curve.Valid() {
		eased = Cached(c.Curve, progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.stop()
	}
}

func (c *Controller) stop() {
	c.running = false

	if c.Value <= c.LowerBound {
		c.setStatus(StatusDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(StatusCompleted)
	}
}

// Reset immediately sets the value to the lower bound.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setStatus(StatusDismissed)
	c.notifyListeners()
}

// Stop stops the animation at the current value.
func (c *Controller) Stop() {
	c.running = false
}

// Status returns the current animation status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *Controller) IsAnimating() bool {
	return c.running
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *Controller) IsCompleted() bool {
	return c.status == StatusCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *Controller) IsDismissed() bool {
	return c.status == StatusDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the animation and drops all listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
