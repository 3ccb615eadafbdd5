package watch

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/go-drift/sand/pkg/tween"
)

const (
	sampleRate = beep.SampleRate(44100)
	tickLength = 60 * time.Millisecond
	tickPitch  = 880
	tickVolume = 0.3
)

// Sound plays a short tone for every second the clock passes.
type Sound struct {
	rate beep.SampleRate
}

// NewSound initializes the speaker. Callers must Close the returned Sound.
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Sound{rate: sampleRate}, nil
}

// Tick plays one tick. It never blocks on the audio device.
func (s *Sound) Tick() {
	if s == nil {
		return
	}
	tone, err := generators.SineTone(s.rate, tickPitch)
	if err != nil {
		return
	}
	n := s.rate.N(tickLength)
	speaker.Play(newEnvelope(beep.Take(n, tone), n, tween.ExpoOut, tickVolume))
}

// Close releases the audio device.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Close()
}

// envelope fades a streamer from volume to silence over n samples along an
// easing curve.
type envelope struct {
	beep.Streamer
	curve  tween.Curve
	volume float64
	n, pos int
}

func newEnvelope(s beep.Streamer, n int, curve tween.Curve, volume float64) *envelope {
	return &envelope{Streamer: s, curve: curve, volume: volume, n: n}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := range samples[:n] {
		gain := e.volume
		if e.n > 0 {
			gain *= 1 - tween.Cached(e.curve, float64(e.pos)/float64(e.n))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}
