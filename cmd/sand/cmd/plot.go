package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/go-drift/sand/cmd/sand/internal/plot"
	"github.com/go-drift/sand/pkg/tween"
)

func init() {
	RegisterCommand(&Command{
		Name:  "plot",
		Short: "Plot curves to a PNG image",
		Long: `Plot one or more easing curves to a PNG image.

Each curve gets its own color and a label in the top-left corner. The
vertical axis stretches to show overshoot.

Flags:
  -o, --output PATH   Output file (default: curves.png)
  --size N            Width and height in pixels (default: 512)
  --cached            Draw from lookup tables (default: tween.cached from sand.yaml)

Examples:
  sand plot bounceout elasticout
  sand plot backinout -o back.png --size 256`,
		Usage: "sand plot CURVE... [-o PATH] [--size N] [--cached]",
		Run:   runPlot,
	})
}

func runPlot(env *Env, args []string) error {
	fs := newFlagSet("plot", env.Stderr)
	output := fs.StringP("output", "o", "curves.png", "output file")
	size := fs.Int("size", plot.DefaultSize, "width and height in pixels")
	cached := fs.Bool("cached", env.Config.Cached, "draw from lookup tables")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("at least one curve is required\n\nUsage: sand plot CURVE...")
	}

	curves := make([]tween.Curve, 0, fs.NArg())
	for _, name := range fs.Args() {
		c, err := parseCurveArg(name)
		if err != nil {
			return err
		}
		curves = append(curves, c)
	}

	img := plot.Render(curves, plot.Options{Size: *size, Cached: *cached})

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *output, err)
	}
	if err := plot.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", *output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	env.Logger.Debug("wrote plot", zap.String("path", *output), zap.Int("size", img.Bounds().Dx()))
	env.Printf("Wrote %s (%dx%d, %d curves)\n", *output, img.Bounds().Dx(), img.Bounds().Dy(), len(curves))
	return nil
}
