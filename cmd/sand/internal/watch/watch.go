// Package watch implements the interactive terminal view behind
// "sand watch": a logical clock, an animated easing curve and a frame-rate
// readout.
package watch

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/go-drift/sand/pkg/calendar"
	"github.com/go-drift/sand/pkg/clock"
	"github.com/go-drift/sand/pkg/errors"
	"github.com/go-drift/sand/pkg/fps"
	"github.com/go-drift/sand/pkg/tween"
)

// AnimationDuration is the length of one sweep of the curve bar.
const AnimationDuration = 2 * time.Second

// DefaultFPS is the frame rate used when Options.FPS is zero.
const DefaultFPS = 30

const (
	minSpeed = 1.0 / 1024
	maxSpeed = 1 << 20
)

// Options configures an App.
type Options struct {
	Curve tween.Curve
	Speed float64
	// FPS is the frame rate. Zero selects DefaultFPS; negative rates are
	// rejected.
	FPS      float64
	Location *time.Location
	Locale   string
	Logger   *zap.Logger
	// Sound receives a tick for every second the clock passes. Nil is silent.
	Sound *Sound
}

// App is the watch view. Drive it with Run, or with HandleEvent and Frame.
type App struct {
	screen  tcell.Screen
	clock   clock.Clock
	opts    Options
	rtc     *clock.RTC
	ctrl    *tween.Controller
	counter *fps.Counter
	logger  *zap.Logger

	lastSecond int64
	ticks      int
}

var (
	styleLabel = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleValue = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBar   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTrack = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHeld  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// New creates the view on an initialized screen.
func New(screen tcell.Screen, c clock.Clock, opts Options) (*App, error) {
	if c == nil {
		c = clock.System
	}
	if !opts.Curve.Valid() {
		opts.Curve = tween.Linear
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FPS == 0 {
		opts.FPS = DefaultFPS
	}
	if !(opts.FPS > 0) || math.IsInf(opts.FPS, 1) {
		return nil, errors.New("watch.New", errors.KindInvalidArgument,
			"frame rate %v must be positive and finite", opts.FPS)
	}

	rtc := clock.NewNow(clock.WithClock(c), clock.WithLocation(opts.Location))
	speed := opts.Speed
	if speed == 0 {
		speed = 1
	}
	if err := rtc.SetSpeed(speed); err != nil {
		return nil, err
	}

	ctrl := tween.NewController(AnimationDuration, c)
	ctrl.Curve = opts.Curve
	ctrl.AddStatusListener(func(s tween.Status) {
		switch s {
		case tween.StatusCompleted:
			ctrl.Reverse()
		case tween.StatusDismissed:
			ctrl.Forward()
		}
	})
	ctrl.Forward()

	return &App{
		screen:     screen,
		clock:      c,
		opts:       opts,
		rtc:        rtc,
		ctrl:       ctrl,
		counter:    fps.NewCounter(c),
		logger:     opts.Logger,
		lastSecond: rtc.CurrentInstant(),
	}, nil
}

// RTC returns the clock shown by the view.
func (a *App) RTC() *clock.RTC { return a.rtc }

// Controller returns the animation shown by the view.
func (a *App) Controller() *tween.Controller { return a.ctrl }

// Ticks returns how many clock seconds have been ticked so far.
func (a *App) Ticks() int { return a.ticks }

// Run processes events and draws frames until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frames := make(chan struct{}, 1)
	go func() {
		limiter := fps.NewLimiter(clock.System)
		for {
			limiter.Wait(a.opts.FPS)
			select {
			case frames <- struct{}{}:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-frames:
			a.Frame()
		}
	}
}

// HandleEvent applies a terminal event. It returns false when the user asked
// to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ', 'p':
		if a.rtc.Held() {
			a.rtc.Resume()
		} else {
			a.rtc.Pause()
		}
		a.logger.Debug("toggled pause", zap.Bool("held", a.rtc.Held()))
	case '+', '=':
		a.setSpeed(a.rtc.Speed() * 2)
	case '-', '_':
		a.setSpeed(a.rtc.Speed() / 2)
	case '1':
		a.setSpeed(1)
	case 'c':
		a.cycleCurve(1)
	case 'C':
		a.cycleCurve(-1)
	case 'r':
		a.ctrl.Reset()
		a.ctrl.Forward()
	}
	return true
}

func (a *App) setSpeed(f float64) {
	f = max(minSpeed, min(maxSpeed, f))
	// The previous rate applies up to now.
	a.rtc.Update()
	if err := a.rtc.SetSpeed(f); err != nil {
		a.logger.Warn("speed rejected", zap.Float64("speed", f), zap.Error(err))
		return
	}
	a.logger.Debug("speed changed", zap.Float64("speed", f))
}

func (a *App) cycleCurve(step int) {
	all := tween.Curves()
	idx := 0
	for i, c := range all {
		if c == a.ctrl.Curve {
			idx = i
			break
		}
	}
	idx = (idx + step + len(all)) % len(all)
	a.ctrl.Curve = all[idx]
	a.logger.Debug("curve changed", zap.Stringer("curve", a.ctrl.Curve))
}

// Frame advances the clock and animation and redraws the screen.
func (a *App) Frame() {
	now := a.rtc.Update()
	if now != a.lastSecond {
		if now > a.lastSecond {
			a.ticks++
			a.opts.Sound.Tick()
		}
		a.lastSecond = now
	}
	a.ctrl.Step()
	a.counter.Tick()
	a.Draw()
}

// Draw renders the current state without advancing it.
func (a *App) Draw() {
	a.screen.Clear()
	width, _ := a.screen.Size()

	state := fmt.Sprintf("running x%g", a.rtc.Speed())
	stateStyle := styleValue
	if a.rtc.Held() {
		state = "paused"
		stateStyle = styleHeld
	}

	row := 1
	a.field(row, "time", a.rtc.String(), styleValue)
	a.text(32, row, state, stateStyle)
	row++
	if cal := calendar.FormatIn(a.rtc.CurrentInstant(), a.opts.Locale, a.opts.Location); cal != "" {
		a.field(row, "calendar", cal, styleValue)
		row++
	}
	a.field(row, "curve", fmt.Sprintf("%-14s %-10s %6.3f", a.ctrl.Curve, a.ctrl.Status(), a.ctrl.Value), styleValue)
	row++
	a.bar(row, width-4, a.ctrl.Value)
	row += 2
	a.field(row, "fps", a.counter.String(), styleValue)
	row += 2
	a.text(2, row, "space pause  +/- speed  1 reset  c/C curve  r replay  q quit", styleLabel)

	a.screen.Show()
}

func (a *App) field(y int, label, value string, style tcell.Style) {
	a.text(2, y, label, styleLabel)
	a.text(12, y, value, style)
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// bar draws a track of width cells at row y filled to value, clamped to the
// track.
func (a *App) bar(y, width int, value float64) {
	if width < 3 {
		return
	}
	inner := width - 2
	filled := int(value*float64(inner) + 0.5)
	filled = max(0, min(inner, filled))

	a.text(2, y, "[", styleTrack)
	a.text(3, y, strings.Repeat("█", filled), styleBar)
	a.text(3+filled, y, strings.Repeat("·", inner-filled), styleTrack)
	a.text(3+inner, y, "]", styleTrack)
}
