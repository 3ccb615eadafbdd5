package tween

// Ping returns t unchanged; a rising ramp.
func Ping(t float64) float64 {
	return t
}

// Pong returns 1-t; a falling ramp.
func Pong(t float64) float64 {
	return 1 - t
}

// PingPong rises from 0 to 1 over the first half of [0, 1] and falls back to
// 0 over the second.
func PingPong(t float64) float64 {
	if t < 0.5 {
		return t + t
	}
	return 2 - t - t
}

// Sinus is a triangle approximation of one sine period over [0, 1]:
// 0 at 0, 1 at 0.25, 0 at 0.5, -1 at 0.75 and 0 at 1.
func Sinus(t float64) float64 {
	x4 := 4 * t
	if x4 >= 3 {
		return x4 - 4
	}
	if x4 < 1 {
		return x4
	}
	return 2 - x4
}
