package cmd

import (
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/sand/pkg/clock"
	"github.com/go-drift/sand/pkg/units"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sync",
		Short: "Measure the local clock against NTP",
		Long: `Query NTP servers and report how far the local clock is off.

Servers are picked at random from --server (repeatable) or clock.ntp in
sand.yaml. Up to --tries queries are made before giving up.

Flags:
  --server HOST   NTP server to query (repeatable)
  --tries N       Number of queries to attempt (default: 3)`,
		Usage: "sand sync [--server HOST]... [--tries N]",
		Run:   runSync,
	})
}

func runSync(env *Env, args []string) error {
	fs := newFlagSet("sync", env.Stderr)
	servers := fs.StringArray("server", nil, "NTP server to query (repeatable)")
	tries := fs.Int("tries", 3, "number of queries to attempt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hosts := *servers
	if len(hosts) == 0 {
		hosts = env.Config.NTPServers
	}

	proc := clock.NewProcess(clock.WithClock(env.Clock))
	env.Logger.Debug("querying time servers", zap.Strings("servers", hosts), zap.Int("tries", *tries))
	if err := proc.Sync(env.Context, hosts, *tries); err != nil {
		return err
	}

	correction := proc.Correction()
	env.Printf("offset     %+.6fs\n", correction)
	env.Printf("local      %s\n", formatUnix(proc.Epoch()+proc.Runtime(), env.Config.Location))
	env.Printf("corrected  %s\n", formatUnix(proc.Now(), env.Config.Location))
	if abs := units.ToMilliseconds(max(correction, -correction)); abs >= 1000 {
		env.Logger.Warn("local clock is off by more than a second", zap.Float64("ms", abs))
	}
	return nil
}

func formatUnix(seconds float64, loc *time.Location) string {
	d := units.Duration(seconds)
	return time.Unix(0, int64(d)).In(loc).Format("2006-01-02 15:04:05.000")
}
