package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/go-drift/sand/cmd/sand/internal/watch"
	"github.com/go-drift/sand/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Watch a clock and a curve in the terminal",
		Long: `Show a live logical clock next to a bar animated by an easing curve.

Keys:
  space, p   Pause or resume the clock
  + / -      Double or halve the clock speed
  1          Reset the speed to 1
  c / C      Next or previous curve
  r          Replay the animation
  q, Esc     Quit

Flags:
  --curve NAME    Curve driving the bar (default: tween.curve from sand.yaml)
  --speed F       Initial clock speed (default: clock.speed from sand.yaml)
  --fps N         Frame rate (default: watch.fps from sand.yaml, or 30)
  --tick          Play a tick for every clock second
  --locale NAME   Locale for the calendar line`,
		Usage: "sand watch [--curve NAME] [--speed F] [--fps N] [--tick] [--locale NAME]",
		Run:   runWatch,
	})
}

func runWatch(env *Env, args []string) error {
	cfg := env.Config
	fs := newFlagSet("watch", env.Stderr)
	curveName := fs.String("curve", cfg.Curve.String(), "curve driving the bar")
	speed := fs.Float64("speed", cfg.Speed, "initial clock speed")
	rate := fs.Float64("fps", cfg.FPS, "frame rate")
	tick := fs.Bool("tick", cfg.Tick, "play a tick for every clock second")
	locale := fs.String("locale", "", "locale for the calendar line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("watch takes no arguments")
	}
	if !(*rate > 0) {
		return errors.New("cmd.watch", errors.KindInvalidArgument,
			"--fps must be positive (got %v)", *rate)
	}

	curve, err := parseCurveArg(*curveName)
	if err != nil {
		return err
	}
	opts := watch.Options{
		Curve:    curve,
		Speed:    *speed,
		FPS:      *rate,
		Location: cfg.Location,
		Locale:   *locale,
		Logger:   zap.NewNop(),
	}
	// Log lines would tear the screen unless asked for.
	if env.Verbose {
		opts.Logger = env.Logger
	}

	if *tick {
		sound, err := watch.NewSound()
		if err != nil {
			env.Logger.Warn("audio unavailable, ticking silently", zap.Error(err))
		} else {
			defer sound.Close()
			opts.Sound = sound
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	app, err := watch.New(screen, env.Clock, opts)
	if err != nil {
		return err
	}
	env.Logger.Debug("watching", zap.Stringer("curve", curve), zap.Float64("speed", *speed),
		zap.Float64("fps", *rate), zap.Bool("tick", opts.Sound != nil))
	return app.Run(env.Context)
}

