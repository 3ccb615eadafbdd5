package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/sand/pkg/errors"
	"github.com/go-drift/sand/pkg/tween"
)

func init() {
	RegisterCommand(&Command{
		Name:  "eval",
		Short: "Evaluate a curve at given phases",
		Long: `Evaluate an easing curve at one or more phases.

Phases at or below 0 yield 0 and phases at or above 1 yield 1. With --cached
the value comes from the curve's 256-sample lookup table, which rounds the
phase down to the nearest sample. Put -- before negative phases so they are
not read as flags.

Flags:
  --cached   Read from the lookup table (default: tween.cached from sand.yaml)

Examples:
  sand eval bounceout 0 .25 .5 .75 1
  sand eval elasticinout .3 --cached=false
  sand eval backin -- -0.5 0.5`,
		Usage: "sand eval CURVE PHASE... [--cached]",
		Run:   runEval,
	})
}

func runEval(env *Env, args []string) error {
	fs := newFlagSet("eval", env.Stderr)
	cached := fs.Bool("cached", env.Config.Cached, "read from the lookup table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("a curve and at least one phase are required\n\nUsage: sand eval CURVE PHASE...")
	}

	curve, err := parseCurveArg(rest[0])
	if err != nil {
		return err
	}
	eval := curve.Eval
	if *cached {
		eval = curve.Cached
	}

	for _, arg := range rest[1:] {
		phase, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.New("eval", errors.KindInvalidArgument, "phase %q is not a number", arg)
		}
		env.Printf("%s(%g) = %.6f\n", curve, phase, eval(phase))
	}
	return nil
}

func parseCurveArg(name string) (tween.Curve, error) {
	curve, ok := tween.ParseCurve(name)
	if !ok {
		return tween.Undefined, errors.New("curve", errors.KindUnrecognizedCurve,
			"unknown curve %q (see \"sand curves\")", name)
	}
	return curve, nil
}
