// Package config loads the optional sand.yaml file and resolves defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	sanderrors "github.com/go-drift/sand/pkg/errors"
	"github.com/go-drift/sand/pkg/tween"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "sand.yaml"

// EnvPath names an environment variable holding an explicit config path.
const EnvPath = "SAND_CONFIG"

// DefaultNTPServers are queried when the config lists none.
var DefaultNTPServers = []string{"0.pool.ntp.org", "1.pool.ntp.org", "2.pool.ntp.org"}

// Config represents the optional sand.yaml configuration.
type Config struct {
	Version string      `yaml:"version,omitempty"`
	Clock   ClockConfig `yaml:"clock"`
	Tween   TweenConfig `yaml:"tween"`
	Watch   WatchConfig `yaml:"watch"`
	Log     LogConfig   `yaml:"log"`
}

// ClockConfig contains logical clock settings.
type ClockConfig struct {
	Speed    float64  `yaml:"speed,omitempty"`
	Location string   `yaml:"location,omitempty"`
	NTP      []string `yaml:"ntp,omitempty"`
}

// TweenConfig contains easing defaults.
type TweenConfig struct {
	Curve  string `yaml:"curve,omitempty"`
	Cached *bool  `yaml:"cached,omitempty"`
}

// WatchConfig contains settings for the watch command.
type WatchConfig struct {
	FPS  float64 `yaml:"fps,omitempty"`
	Tick bool    `yaml:"tick,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path       string
	Speed      float64
	Location   *time.Location
	NTPServers []string
	Curve      tween.Curve
	Cached     bool
	FPS        float64
	Tick       bool
	LogLevel   string
}

// Default returns the configuration used when no file is present.
func Default() *Resolved {
	return &Resolved{
		Speed:      1,
		Location:   time.Local,
		NTPServers: append([]string(nil), DefaultNTPServers...),
		Curve:      tween.ElasticOut,
		Cached:     true,
		FPS:        30,
		LogLevel:   "info",
	}
}

// Locate returns the config path to use: explicit if set, then $SAND_CONFIG,
// then sand.yaml in dir.
func Locate(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return filepath.Join(dir, FileName)
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty Config unless required is set.
func LoadOptional(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, &sanderrors.Error{Op: "config.Load", Kind: sanderrors.KindConfig,
			Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &sanderrors.Error{Op: "config.Load", Kind: sanderrors.KindConfig,
			Err: fmt.Errorf("failed to parse %s: %w", path, err)}
	}
	return &cfg, nil
}

// Resolve loads the config at path (if present), checks its version gate
// against cliVersion and fills in defaults.
func Resolve(path string, required bool, cliVersion string) (*Resolved, error) {
	cfg, err := LoadOptional(path, required)
	if err != nil {
		return nil, err
	}
	r, err := cfg.resolve(cliVersion)
	if err != nil {
		return nil, &sanderrors.Error{Op: "config.Resolve", Kind: sanderrors.KindConfig, Err: err}
	}
	r.Path = path
	return r, nil
}

func (c *Config) resolve(cliVersion string) (*Resolved, error) {
	if err := CheckVersion(c.Version, cliVersion); err != nil {
		return nil, err
	}

	r := Default()

	if c.Clock.Speed != 0 {
		if !(c.Clock.Speed > 0) || math.IsInf(c.Clock.Speed, 1) {
			return nil, fmt.Errorf("clock.speed must be positive (got %v)", c.Clock.Speed)
		}
		r.Speed = c.Clock.Speed
	}

	if name := strings.TrimSpace(c.Clock.Location); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("clock.location: %w", err)
		}
		r.Location = loc
	}

	if len(c.Clock.NTP) > 0 {
		r.NTPServers = nil
		for _, s := range c.Clock.NTP {
			if s = strings.TrimSpace(s); s != "" {
				r.NTPServers = append(r.NTPServers, s)
			}
		}
		if len(r.NTPServers) == 0 {
			return nil, fmt.Errorf("clock.ntp lists no usable servers")
		}
	}

	if name := strings.TrimSpace(c.Tween.Curve); name != "" {
		curve, ok := tween.ParseCurve(name)
		if !ok {
			return nil, sanderrors.New("config", sanderrors.KindUnrecognizedCurve,
				"tween.curve: unknown curve %q", name)
		}
		r.Curve = curve
	}
	if c.Tween.Cached != nil {
		r.Cached = *c.Tween.Cached
	}

	if c.Watch.FPS < 0 {
		return nil, fmt.Errorf("watch.fps cannot be negative (got %v)", c.Watch.FPS)
	}
	if c.Watch.FPS > 0 {
		r.FPS = c.Watch.FPS
	}
	r.Tick = c.Watch.Tick

	if level := strings.TrimSpace(c.Log.Level); level != "" {
		r.LogLevel = strings.ToLower(level)
	}

	return r, nil
}

// CheckVersion reports an error when cliVersion is older than the minimum
// required. An empty minimum always passes, as does a build whose version is
// not valid semver. A prerelease such as 0.2.0-dev satisfies a minimum of
// v0.2.0.
func CheckVersion(minimum, cliVersion string) error {
	minimum = strings.TrimSpace(minimum)
	if minimum == "" {
		return nil
	}
	minimum = canonical(minimum)
	if !semver.IsValid(minimum) {
		return fmt.Errorf("version %q is not a semantic version", minimum)
	}
	current := semver.Canonical(canonical(cliVersion))
	if current == "" {
		return nil
	}
	current = strings.TrimSuffix(current, semver.Prerelease(current))
	if semver.Compare(current, minimum) < 0 {
		return fmt.Errorf("sand.yaml requires sand %s or newer (running %s)", minimum, current)
	}
	return nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
