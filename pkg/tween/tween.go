// Package tween provides easing curves and the primitives that animate with
// them.
//
// # Core Components
//
//   - [Curve]: a closed catalogue of easing functions (quad, cubic, quart,
//     quint, sine, expo, circ, elastic, back and bounce families, plus a few
//     custom shapes). [Evaluate] is the central dispatcher.
//
//   - [Cached]: the same curves read from 256-sample lookup tables, built once
//     per curve on first use. Cheaper per call, stepped between samples.
//
//   - [Tween]: interpolates between Begin and End values of any type through
//     a curve.
//
//   - [Controller]: drives a value from 0 to 1 (or back) over a duration,
//     advanced once per frame with [Controller.Step].
//
// # Basic Usage
//
//	c := tween.NewController(300*time.Millisecond, clock.System)
//	c.Curve = tween.BackOut
//	size := tween.TweenFloat64(100, 200)
//	c.Forward()
//
//	// Each frame
//	c.Step()
//	draw(size.Transform(c))
package tween

import "time"

// Tween interpolates between Begin and End values based on progress.
//
// Use the helper constructors ([TweenFloat64], [TweenDuration]) for common
// types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
	// Curve eases t before Lerp sees it. Undefined leaves t untouched.
	Curve Curve
}

// Evaluate returns the interpolated value at t (0.0 to 1.0), eased by Curve.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	if tw.Curve.Valid() {
		t = Cached(tw.Curve, t)
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the controller's current value.
// The controller has already applied its own curve, so the tween's Curve is
// not applied again.
func (tw *Tween[T]) Transform(controller *Controller) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpDuration linearly interpolates between two durations.
func LerpDuration(a, b time.Duration, t float64) time.Duration {
	return a + time.Duration(float64(b-a)*t)
}

// TweenFloat64 creates a linear tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenDuration creates a linear tween for durations.
func TweenDuration(begin, end time.Duration) *Tween[time.Duration] {
	return &Tween[time.Duration]{
		Begin: begin,
		End:   end,
		Lerp:  LerpDuration,
	}
}
