package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-drift/sand/pkg/tween"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curves",
		Short: "List easing curves",
		Long: `List every easing curve with its value at a few phases and a sparkline
of its shape. Values below 0 or above 1 show overshoot.`,
		Usage: "sand curves",
		Run:   runCurves,
	})
}

const sparkWidth = 24

var sparkBlocks = []rune(" ▁▂▃▄▅▆▇█")

func runCurves(env *Env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("curves takes no arguments")
	}

	w := tabwriter.NewWriter(env.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "NAME", "0.25", "0.50", "0.75", "SHAPE")
	for _, c := range tween.Curves() {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%s\n", c,
			tween.Evaluate(c, 0.25), tween.Evaluate(c, 0.5), tween.Evaluate(c, 0.75),
			sparkline(c, sparkWidth))
	}
	return w.Flush()
}

// sparkline draws the curve across width cells, clamping overshoot.
func sparkline(c tween.Curve, width int) string {
	var b strings.Builder
	top := len(sparkBlocks) - 1
	for i := range width {
		v := tween.Evaluate(c, float64(i)/float64(width-1))
		level := int(v*float64(top) + 0.5)
		level = max(0, min(top, level))
		b.WriteRune(sparkBlocks[level])
	}
	return b.String()
}
