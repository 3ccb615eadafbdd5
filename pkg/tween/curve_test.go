package tween

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phases(n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i) / float64(n)
	}
	return out
}

func TestEvaluate_Boundaries(t *testing.T) {
	for _, c := range Curves() {
		for _, p := range []float64{-100, -1, -1e-12, 0, math.Inf(-1), math.NaN()} {
			assert.Equal(t, 0.0, Evaluate(c, p), "%s at %v", c, p)
		}
		for _, p := range []float64{1, 1 + 1e-12, 2, 1e9, math.Inf(1)} {
			assert.Equal(t, 1.0, Evaluate(c, p), "%s at %v", c, p)
		}
	}
}

func TestEvaluate_Linear(t *testing.T) {
	for _, p := range phases(1000) {
		assert.Equal(t, p, Evaluate(Linear, p))
	}
}

func TestEvaluate_PowerSymmetry(t *testing.T) {
	pairs := []struct{ in, out, inOut Curve }{
		{QuadIn, QuadOut, QuadInOut},
		{CubicIn, CubicOut, CubicInOut},
		{QuartIn, QuartOut, QuartInOut},
		{QuintIn, QuintOut, QuintInOut},
	}
	for _, pair := range pairs {
		for _, p := range phases(200) {
			assert.InDelta(t, Evaluate(pair.in, p), 1-Evaluate(pair.out, 1-p), 1e-5,
				"%s/%s at %v", pair.in, pair.out, p)
			assert.InDelta(t, Evaluate(pair.inOut, p), 1-Evaluate(pair.inOut, 1-p), 1e-5,
				"%s at %v", pair.inOut, p)
		}
	}
}

func TestEvaluate_KnownValues(t *testing.T) {
	tests := []struct {
		curve Curve
		phase float64
		want  float64
	}{
		{QuadIn, 0.5, 0.25},
		{QuadOut, 0.5, 0.75},
		{QuadInOut, 0.25, 0.125},
		{QuadInOut, 0.75, 0.875},
		{CubicIn, 0.5, 0.125},
		{CubicOut, 0.5, 0.875},
		{QuartInOut, 0.25, 0.03125},
		{QuintIn, 0.5, 0.03125},
		{SineIn, 0.5, 1 - math.Sqrt2/2},
		{SineOut, 0.5, math.Sqrt2 / 2},
		{SineInOut, 0.5, 0.5},
		{ExpoIn, 0.5, 0.03125},
		{ExpoOut, 0.5, 0.96875},
		{ExpoInOut, 0.5, 0.5},
		{CircIn, 0.6, 0.2},
		{CircOut, 0.4, 0.8},
		{CircInOut, 0.5, 0.5},
		{ElasticOut, 0.5, 1.015625},
		{ElasticIn, 0.5, -0.015625},
		{BackIn, 0.5, -0.0876975},
		{BackOut, 0.5, 1.0876975},
		{BackInOut, 0.5, 0.5},
		{BounceOut, 0.5, 0.765625},
		{BounceIn, 0.5, 0.234375},
		{BounceInOut, 0.25, 0.1171875},
		{BounceOut, 0.2, 0.3025},
		{SineSquare, 0.5, 0.5},
		{Exponential, 0.5, 0.5},
		{Schubring1, 0.25, 0.125},
		{Schubring2, 0.25, 0.03125},
		{Schubring3, 0.25, 0.078125},
		{AccelBreak, 0.5, 0.5},
		{SinPi2, 0.5, math.Sqrt2 / 2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Evaluate(tt.curve, tt.phase), 1e-9, "%s at %v", tt.curve, tt.phase)
	}
}

func TestEvaluate_Range(t *testing.T) {
	overshoots := map[Curve]bool{
		ElasticIn: true, ElasticOut: true, ElasticInOut: true,
		BackIn: true, BackOut: true, BackInOut: true,
	}
	for _, c := range Curves() {
		if overshoots[c] {
			continue
		}
		for _, p := range phases(500) {
			v := Evaluate(c, p)
			assert.True(t, v >= -1e-12 && v <= 1+1e-12, "%s at %v = %v", c, p, v)
		}
	}
}

func TestEvaluate_Overshoot(t *testing.T) {
	for _, c := range []Curve{BackIn, ElasticIn} {
		lowest := 0.0
		for _, p := range phases(500) {
			lowest = math.Min(lowest, Evaluate(c, p))
		}
		assert.Less(t, lowest, 0.0, "%s should dip below 0", c)
	}
	for _, c := range []Curve{BackOut, ElasticOut} {
		highest := 0.0
		for _, p := range phases(500) {
			highest = math.Max(highest, Evaluate(c, p))
		}
		assert.Greater(t, highest, 1.0, "%s should exceed 1", c)
	}
}

func TestEvaluate_Unrecognized(t *testing.T) {
	for _, c := range []Curve{Undefined, curveCount, Curve(-1), Curve(1000)} {
		assert.Equal(t, 0.0, Evaluate(c, 0.5))
		assert.Equal(t, 0.0, Evaluate(c, 1))
		v, ok := EvaluateOK(c, 0.5)
		assert.False(t, ok)
		assert.Equal(t, 0.0, v)
	}

	v, ok := EvaluateOK(QuadIn, 0.5)
	assert.True(t, ok)
	assert.Equal(t, 0.25, v)
}

func TestCurve_Names(t *testing.T) {
	seen := make(map[string]Curve)
	for _, c := range Curves() {
		name := Name(c)
		require.NotEmpty(t, name)
		if prev, dup := seen[name]; dup {
			t.Fatalf("%d and %d share name %q", prev, c, name)
		}
		seen[name] = c
	}
	assert.Len(t, seen, int(curveCount)-1)

	assert.Equal(t, "undefined", Undefined.String())
	assert.Equal(t, "elasticinout", ElasticInOut.String())
	assert.Equal(t, "Curve(99)", Curve(99).String())
	assert.Equal(t, "Curve(-3)", Curve(-3).String())
}

func TestParseCurve(t *testing.T) {
	for _, c := range Curves() {
		got, ok := ParseCurve(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	got, ok := ParseCurve("Bounce-In_Out")
	assert.True(t, ok)
	assert.Equal(t, BounceInOut, got)

	for _, bad := range []string{"", "undefined", "wobble", "Curve(3)"} {
		_, ok := ParseCurve(bad)
		assert.False(t, ok, bad)
	}
}

func TestCurve_Methods(t *testing.T) {
	assert.Equal(t, Evaluate(CircOut, 0.3), CircOut.Eval(0.3))
	assert.Equal(t, Cached(CircOut, 0.3), CircOut.Cached(0.3))

	f := CircOut.Func()
	assert.Equal(t, Cached(CircOut, 0.3), f(0.3))
}

func TestCurves_Enumerates(t *testing.T) {
	all := Curves()
	require.Len(t, all, int(curveCount)-1)
	assert.Equal(t, Linear, all[0])
	assert.Equal(t, SinPi2, all[len(all)-1])
	for _, c := range all {
		assert.True(t, c.Valid())
	}
}
