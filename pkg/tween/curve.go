package tween

import (
	"fmt"
	"strings"
)

// Curve identifies an easing function in the catalogue.
//
// Curves map a phase in [0, 1] to eased progress. Every curve returns exactly
// 0 at or below phase 0 and exactly 1 at or above phase 1; in between, the
// elastic and back families overshoot [0, 1].
type Curve int

// The catalogue. Undefined is the zero value and is not a valid curve.
const (
	Undefined Curve = iota
	Linear

	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuartIn
	QuartOut
	QuartInOut
	QuintIn
	QuintOut
	QuintInOut

	SineIn
	SineOut
	SineInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	CircIn
	CircOut
	CircInOut

	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut

	// SineSquare is sin²(t·π/2).
	SineSquare
	// Exponential is the logistic 1/(1+e^(6-12t)).
	Exponential

	// Schubring1 is Terry Schubring's single-pass S-curve.
	Schubring1
	// Schubring2 applies the Schubring pass twice.
	Schubring2
	// Schubring3 averages the first and second Schubring passes.
	Schubring3

	// AccelBreak accelerates then brakes along half a sine period.
	AccelBreak
	// SinPi2 is sin(t·π/2), a quarter-period fade.
	SinPi2

	curveCount
)

type entry struct {
	name string
	fn   func(float64) float64
}

var catalogue = [curveCount]entry{
	Undefined: {"undefined", nil},
	Linear:    {"linear", linear},

	QuadIn:     {"quadin", quadIn},
	QuadOut:    {"quadout", quadOut},
	QuadInOut:  {"quadinout", quadInOut},
	CubicIn:    {"cubicin", cubicIn},
	CubicOut:   {"cubicout", cubicOut},
	CubicInOut: {"cubicinout", cubicInOut},
	QuartIn:    {"quartin", quartIn},
	QuartOut:   {"quartout", quartOut},
	QuartInOut: {"quartinout", quartInOut},
	QuintIn:    {"quintin", quintIn},
	QuintOut:   {"quintout", quintOut},
	QuintInOut: {"quintinout", quintInOut},

	SineIn:    {"sinein", sineIn},
	SineOut:   {"sineout", sineOut},
	SineInOut: {"sineinout", sineInOut},
	ExpoIn:    {"expoin", expoIn},
	ExpoOut:   {"expoout", expoOut},
	ExpoInOut: {"expoinout", expoInOut},
	CircIn:    {"circin", circIn},
	CircOut:   {"circout", circOut},
	CircInOut: {"circinout", circInOut},

	ElasticIn:    {"elasticin", elasticIn},
	ElasticOut:   {"elasticout", elasticOut},
	ElasticInOut: {"elasticinout", elasticInOut},
	BackIn:       {"backin", backIn},
	BackOut:      {"backout", backOut},
	BackInOut:    {"backinout", backInOut},
	BounceIn:     {"bouncein", bounceIn},
	BounceOut:    {"bounceout", bounceOut},
	BounceInOut:  {"bounceinout", bounceInOut},

	SineSquare:  {"sinesquare", sineSquare},
	Exponential: {"exponential", exponential},
	Schubring1:  {"schubring1", schubring1},
	Schubring2:  {"schubring2", schubring2},
	Schubring3:  {"schubring3", schubring3},
	AccelBreak:  {"accelbreak", accelBreak},
	SinPi2:      {"sinpi2", sinPi2},
}

var byName = func() map[string]Curve {
	m := make(map[string]Curve, curveCount)
	for c := Linear; c < curveCount; c++ {
		m[catalogue[c].name] = c
	}
	return m
}()

// Valid reports whether c is part of the catalogue.
func (c Curve) Valid() bool {
	return c > Undefined && c < curveCount
}

// String returns the curve's stable identifier, such as "quadin". Values
// outside the catalogue render as "Curve(n)".
func (c Curve) String() string {
	if c < Undefined || c >= curveCount {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return catalogue[c].name
}

// Name returns c.String().
func Name(c Curve) string {
	return c.String()
}

// Eval evaluates the curve directly. See [Evaluate].
func (c Curve) Eval(t float64) float64 {
	return Evaluate(c, t)
}

// Cached evaluates the curve through its lookup table. See [Cached].
func (c Curve) Cached(t float64) float64 {
	return Cached(c, t)
}

// Func returns the cached evaluator as a plain function, for APIs that take
// an easing func.
func (c Curve) Func() func(float64) float64 {
	return c.Cached
}

// Curves returns every valid curve in catalogue order.
func Curves() []Curve {
	out := make([]Curve, 0, curveCount-1)
	for c := Linear; c < curveCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCurve looks a curve up by identifier. Matching ignores case and the
// separators '-', '_' and ' ', so "Quad-In" finds QuadIn.
func ParseCurve(name string) (Curve, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
	c, ok := byName[key]
	return c, ok
}

// Evaluate returns curve c at phase t. Phases at or below 0 (and NaN) yield
// 0, phases at or above 1 yield 1. Curves outside the catalogue yield 0; use
// [EvaluateOK] to tell that apart from a real zero.
func Evaluate(c Curve, t float64) float64 {
	v, _ := EvaluateOK(c, t)
	return v
}

// EvaluateOK is Evaluate with a flag reporting whether c is a valid curve.
func EvaluateOK(c Curve, t float64) (float64, bool) {
	if !c.Valid() {
		return 0, false
	}
	if !(t > 0) {
		return 0, true
	}
	if t >= 1 {
		return 1, true
	}
	return catalogue[c].fn(t), true
}
