package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/sand/pkg/clock"
	"github.com/go-drift/sand/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "parse",
		Short: "Parse serialized clock text",
		Long: `Parse one or more serialized clock readings.

Each TEXT holds year, month, day, hour, minute and second separated by any
of ':', '-', '/' or ' '. Out-of-range fields roll over, so "2024-01-32 00:00:00"
is February 1st. Text that does not parse is reported and the command fails
after printing the rest.

Examples:
  sand parse "2013/05/17 21:00:00"
  sand parse "2024-02-30 00:00:00" "1999 12 31 23 59 59"`,
		Usage: "sand parse TEXT...",
		Run:   runParse,
	})
}

func runParse(env *Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one TEXT is required\n\nUsage: sand parse TEXT...")
	}

	var failed []string
	for _, text := range args {
		rtc := clock.New(0, clock.WithClock(env.Clock), clock.WithLocation(env.Config.Location))
		if err := rtc.UnmarshalText([]byte(text)); err != nil {
			if e, ok := err.(*errors.Error); ok {
				errors.Report(e)
			}
			env.Printf("%-24q invalid\n", text)
			failed = append(failed, text)
			continue
		}
		env.Printf("%-24q %s  %d\n", text, rtc, rtc.Anchor())
	}

	if len(failed) > 0 {
		return errors.New("parse", errors.KindMalformedInput,
			"%d of %d inputs did not parse: %s", len(failed), len(args), strings.Join(failed, ", "))
	}
	return nil
}
