// Package cmd implements the sand CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (now, parse, curves, eval, plot, watch, ago,
// sync, version).
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/go-drift/sand/cmd/sand/internal/config"
	"github.com/go-drift/sand/pkg/clock"
	"github.com/go-drift/sand/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(env *Env, args []string) error
}

// Env carries what a command needs from the root: resolved configuration,
// output streams, a logger and the wall clock.
type Env struct {
	Context context.Context
	Config  *config.Resolved
	Logger  *zap.Logger
	Clock   clock.Clock
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
}

// Printf writes formatted output to Stdout.
func (e *Env) Printf(format string, args ...any) {
	fmt.Fprintf(e.Stdout, format, args...)
}

// Println writes a line to Stdout.
func (e *Env) Println(args ...any) {
	fmt.Fprintln(e.Stdout, args...)
}

var rootCmd = &Command{
	Name:  "sand",
	Short: "sand - scalable clocks and easing curves",
	Long: `sand is a toolbox for time in interactive programs: a logical clock
that can be paused, sped up or slowed down, a catalogue of easing curves
with cached lookup tables, frame-rate helpers and friendly time phrases.

Use "sand <command> --help" for more information about a command.`,
	Usage: "sand [--config PATH] [--verbose] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// Execute runs the CLI with the process arguments and standard streams.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the CLI with the given arguments.
// A panicking command is reported to the error handler and returned as a
// [errors.KindPanic] error.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	var (
		configPath string
		verbose    bool
	)

	// Handle global flags ahead of the command name
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(filteredArgs) > 0 {
			filteredArgs = append(filteredArgs, arg)
			continue
		}
		switch {
		case arg == "-h" || arg == "--help" || arg == "help":
			printHelp(stdout)
			return nil
		case arg == "-v" || arg == "--version":
			printVersion(stdout)
			return nil
		case arg == "--verbose":
			verbose = true
		case arg == "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	// Find the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(stderr)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	required := configPath != "" || os.Getenv(config.EnvPath) != ""
	cfg, err := config.Resolve(config.Locate(configPath, cwd), required, Version)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, verbose, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	errors.SetHandler(errors.NewLogHandler(logger, verbose))
	defer errors.SetHandler(nil)
	op := "cmd." + cmd.Name
	defer errors.RecoverWithCallback(op, func(r any) {
		err = errors.New(op, errors.KindPanic, "panic: %v", r)
	})

	logger.Debug("running command",
		zap.String("command", cmd.Name),
		zap.String("config", cfg.Path),
		zap.Strings("args", cmdArgs))

	env := &Env{
		Context: ctx,
		Config:  cfg,
		Logger:  logger.Named(cmd.Name),
		Clock:   clock.System,
		Stdout:  stdout,
		Stderr:  stderr,
		Verbose: verbose,
	}
	return cmd.Run(env, cmdArgs)
}

// newFlagSet returns a flag set for a command that reports parse errors
// instead of exiting.
func newFlagSet(cmd string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	return fs
}

func sortedCommands() []*Command {
	out := make([]*Command, 0, len(commands))
	for _, cmd := range commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "sand version %s (built %s)\n", Version, BuildTime)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range sortedCommands() {
		fmt.Fprintf(w, "  %-10s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config PATH        Read configuration from PATH (default: ./sand.yaml)")
	fmt.Fprintln(w, "  --verbose            Log at debug level with stack traces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SAND_CONFIG          Configuration path (lower priority than --config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  sand now --speed 60          Show a clock running an hour per minute")
	fmt.Fprintln(w, "  sand eval bounceout 0 .5 1   Evaluate a curve at three phases")
	fmt.Fprintln(w, "  sand watch --curve backout   Animate a curve in the terminal")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
