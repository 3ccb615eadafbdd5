package tween

import "sync"

// Samples is the resolution of each curve's lookup table.
const Samples = 256

const lastSample = Samples - 1

// table holds one curve's samples. The once guards the lazy build so that
// concurrent first lookups are safe; later reads take no lock.
type table struct {
	once    sync.Once
	samples [Samples]float64
}

var tables [curveCount]table

func (tb *table) load(c Curve) *[Samples]float64 {
	tb.once.Do(func() {
		for i := range tb.samples {
			tb.samples[i] = Evaluate(c, float64(i)/lastSample)
		}
	})
	return &tb.samples
}

// Cached returns curve c at phase t from a 256-sample lookup table built on
// first use. t is clamped to [0, 1] and snapped down to the nearest sample;
// there is no interpolation, so the result is stepped between i/255 and
// (i+1)/255. Curves outside the catalogue yield 0.
func Cached(c Curve, t float64) float64 {
	if !c.Valid() {
		return 0
	}
	return tables[c].load(c)[sampleIndex(t)]
}

// Table returns a copy of the lookup table for c, building it if needed.
func Table(c Curve) ([Samples]float64, bool) {
	if !c.Valid() {
		return [Samples]float64{}, false
	}
	return *tables[c].load(c), true
}

// sampleIndex returns the largest i with i/255 <= t, clamped to the table.
func sampleIndex(t float64) int {
	if !(t > 0) {
		return 0
	}
	if t >= 1 {
		return lastSample
	}
	i := int(t * lastSample)
	// t*255 can round across an integer; settle against the sample grid.
	if i > 0 && float64(i)/lastSample > t {
		i--
	}
	if i < lastSample && float64(i+1)/lastSample <= t {
		i++
	}
	return i
}
