package tween

import "math"

// Closed-form curves after Robert Penner's easing equations. Each function
// assumes 0 < t < 1; Evaluate handles the boundaries.

const (
	// backOvershoot is the classic 10% overshoot constant.
	backOvershoot = 1.70158
	// backInOutScale stretches the overshoot for the two-sided back curve.
	backInOutScale = 1.525

	elasticAmplitude = 1.0
	elasticPeriod    = 0.3
	// elasticInOutPeriod widens the period for the two-sided elastic curve.
	elasticInOutPeriod = 0.3 * 1.5

	bounceFactor = 7.5625
	bounceSpan   = 2.75
)

func linear(t float64) float64 { return t }

func quadIn(t float64) float64 { return t * t }

func quadOut(t float64) float64 { return (2 - t) * t }

func quadInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

func cubicIn(t float64) float64 { return t * t * t }

func cubicOut(t float64) float64 {
	t--
	return 1 + t*t*t
}

func cubicInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

func quartIn(t float64) float64 { return t * t * t * t }

func quartOut(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func quartInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

func quintIn(t float64) float64 { return t * t * t * t * t }

func quintOut(t float64) float64 {
	t--
	return 1 + t*t*t*t*t
}

func quintInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}

func sineIn(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

func sineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }

func sineInOut(t float64) float64 { return -0.5 * (math.Cos(math.Pi*t) - 1) }

func expoIn(t float64) float64 { return math.Pow(2, 10*(t-1)) }

func expoOut(t float64) float64 { return 1 - math.Pow(2, -10*t) }

func expoInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	t--
	return 0.5 * (2 - math.Pow(2, -10*t))
}

func circIn(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

func circOut(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

func circInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

func elasticIn(t float64) float64 {
	const s = elasticPeriod / 4
	t--
	return -(elasticAmplitude * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/elasticPeriod))
}

func elasticOut(t float64) float64 {
	const s = elasticPeriod / 4
	return elasticAmplitude*math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/elasticPeriod) + 1
}

func elasticInOut(t float64) float64 {
	const s = elasticInOutPeriod / 4
	t *= 2
	t--
	wave := math.Sin((t - s) * (2 * math.Pi) / elasticInOutPeriod)
	if t < 0 {
		return -0.5 * elasticAmplitude * math.Pow(2, 10*t) * wave
	}
	return elasticAmplitude*math.Pow(2, -10*t)*wave*0.5 + 1
}

func backIn(t float64) float64 {
	const s = backOvershoot
	return t * t * ((s+1)*t - s)
}

func backOut(t float64) float64 {
	const s = backOvershoot
	t--
	return t*t*((s+1)*t+s) + 1
}

func backInOut(t float64) float64 {
	const s = backOvershoot * backInOutScale
	t *= 2
	if t < 1 {
		return 0.5 * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return 0.5 * (t*t*((s+1)*t+s) + 2)
}

// bounce is the bounce-out shape over four parabolic arcs.
func bounce(t float64) float64 {
	switch {
	case t < 1/bounceSpan:
		return bounceFactor * t * t
	case t < 2/bounceSpan:
		t -= 1.5 / bounceSpan
		return bounceFactor*t*t + 0.75
	case t < 2.5/bounceSpan:
		t -= 2.25 / bounceSpan
		return bounceFactor*t*t + 0.9375
	default:
		t -= 2.625 / bounceSpan
		return bounceFactor*t*t + 0.984375
	}
}

func bounceIn(t float64) float64 { return 1 - bounce(1-t) }

func bounceOut(t float64) float64 { return bounce(t) }

func bounceInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - bounce(1-2*t)) * 0.5
	}
	return bounce(2*t-1)*0.5 + 0.5
}

func sineSquare(t float64) float64 {
	a := math.Sin(0.5 * t * math.Pi)
	return a * a
}

func exponential(t float64) float64 { return 1 / (1 + math.Exp(6-12*t)) }

func schubringPass(t float64) float64 {
	return 2*(t+(0.5-t)*math.Abs(0.5-t)) - 0.5
}

func schubring1(t float64) float64 { return schubringPass(t) }

func schubring2(t float64) float64 { return schubringPass(schubringPass(t)) }

func schubring3(t float64) float64 {
	p1 := schubringPass(t)
	p2 := schubringPass(p1)
	return (p1 + p2) / 2
}

func accelBreak(t float64) float64 { return (math.Sin(t*math.Pi-math.Pi/2) + 1) / 2 }

func sinPi2(t float64) float64 { return math.Sin(t * 0.5 * math.Pi) }
