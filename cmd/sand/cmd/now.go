package cmd

import (
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/sand/pkg/ago"
	"github.com/go-drift/sand/pkg/calendar"
	"github.com/go-drift/sand/pkg/clock"
)

func init() {
	RegisterCommand(&Command{
		Name:  "now",
		Short: "Show a logical clock reading",
		Long: `Show a logical clock anchored at the current time or at --at.

With --wait the clock runs for the given duration at --speed before it is
read, so "sand now --speed 3600 --wait 2s" shows two hours passing.

Flags:
  --at UNIX        Anchor at this Unix second (default: now)
  --speed F        Speed factor (default: clock.speed from sand.yaml, or 1)
  --wait DURATION  Let the clock run before reading it
  --utc            Show calendar fields in UTC
  --locale NAME    Locale for the calendar line (default: $LC_ALL, $LC_TIME, $LANG)`,
		Usage: "sand now [--at UNIX] [--speed F] [--wait DURATION] [--utc] [--locale NAME]",
		Run:   runNow,
	})
}

func runNow(env *Env, args []string) error {
	fs := newFlagSet("now", env.Stderr)
	at := fs.Int64("at", 0, "anchor at this Unix second")
	speed := fs.Float64("speed", env.Config.Speed, "speed factor")
	wait := fs.Duration("wait", 0, "let the clock run before reading it")
	utc := fs.Bool("utc", false, "show calendar fields in UTC")
	locale := fs.String("locale", "", "locale for the calendar line")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc := env.Config.Location
	if *utc {
		loc = time.UTC
	}
	opts := []clock.Option{clock.WithClock(env.Clock), clock.WithLocation(loc)}

	var rtc *clock.RTC
	if fs.Changed("at") {
		rtc = clock.New(*at, opts...)
	} else {
		rtc = clock.NewNow(opts...)
	}
	if err := rtc.SetSpeed(*speed); err != nil {
		return err
	}

	if *wait > 0 {
		proc := clock.NewProcess(clock.WithClock(env.Clock))
		if err := proc.Sleep(env.Context, wait.Seconds()); err != nil {
			return err
		}
	}
	instant := rtc.Update()

	env.Printf("instant   %d\n", instant)
	env.Printf("time      %s\n", rtc)
	env.Printf("location  %s\n", rtc.Location())
	env.Printf("fields    %04d %02d %02d %02d:%02d:%02d\n",
		rtc.Year(), rtc.Month(), rtc.Day(), rtc.Hour(), rtc.Minute(), rtc.Second())
	if text := calendar.FormatIn(instant, *locale, loc); text != "" {
		env.Printf("calendar  %s\n", text)
	} else {
		env.Logger.Warn("locale not understood", zap.String("locale", *locale))
	}
	env.Printf("speed     %g\n", rtc.Speed())
	env.Printf("relative  %s\n", relative(instant-env.Clock.Now().Unix()))
	return nil
}

// relative phrases an offset from the wall clock, in seconds.
func relative(diff int64) string {
	if diff > 0 {
		return ago.In(float64(diff))
	}
	return ago.Ago(float64(-diff))
}
