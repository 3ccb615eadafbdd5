package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/sand/pkg/ago"
	"github.com/go-drift/sand/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "ago",
		Short: "Phrase a time difference",
		Long: `Phrase time differences in seconds as "3 hours ago" or, with --future,
"in 3 hours".

Flags:
  --future   Describe a moment ahead instead of behind

Examples:
  sand ago 90 7200 1209600
  sand ago --future 86400`,
		Usage: "sand ago SECONDS... [--future]",
		Run:   runAgo,
	})
}

func runAgo(env *Env, args []string) error {
	fs := newFlagSet("ago", env.Stderr)
	future := fs.Bool("future", false, "describe a moment ahead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("at least one SECONDS value is required\n\nUsage: sand ago SECONDS...")
	}

	phrase := ago.Ago
	if *future {
		phrase = ago.In
	}
	for _, arg := range fs.Args() {
		s, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.New("ago", errors.KindInvalidArgument, "%q is not a number of seconds", arg)
		}
		env.Println(phrase(s))
	}
	return nil
}
