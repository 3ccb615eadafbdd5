// Package plot renders easing curves to raster images.
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/sand/pkg/tween"
)

const (
	// MinSize is the smallest canvas Render produces.
	MinSize = 64
	// DefaultSize is used when Options.Size is zero.
	DefaultSize = 512
	// DefaultSamples is used when Options.Samples is zero.
	DefaultSamples = 200

	strokeWidth = 1.5
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	gridColor  = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	axisColor  = color.RGBA{0x99, 0x99, 0x99, 0xff}
	palette    = []color.RGBA{
		{0x1f, 0x77, 0xb4, 0xff},
		{0xd6, 0x27, 0x28, 0xff},
		{0x2c, 0xa0, 0x2c, 0xff},
		{0xff, 0x7f, 0x0e, 0xff},
		{0x94, 0x67, 0xbd, 0xff},
		{0x8c, 0x56, 0x4b, 0xff},
	}
)

// Options controls rendering.
type Options struct {
	// Size is the width and height of the square canvas in pixels.
	Size int
	// Samples is the number of segments drawn per curve.
	Samples int
	// Cached draws from lookup tables instead of the closed forms.
	Cached bool
}

// Color returns the stroke color used for the i'th curve.
func Color(i int) color.RGBA {
	return palette[i%len(palette)]
}

// frame maps phase and value to pixel coordinates.
type frame struct {
	left, top, right, bottom float64
	lo, hi                   float64
}

func (f frame) x(phase float64) float64 {
	return f.left + phase*(f.right-f.left)
}

func (f frame) y(value float64) float64 {
	return f.bottom - (value-f.lo)/(f.hi-f.lo)*(f.bottom-f.top)
}

// Render draws each curve over phase 0..1 on a square canvas. The vertical
// range always covers 0..1 and grows to fit overshoot.
func Render(curves []tween.Curve, opts Options) *image.RGBA {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	size = max(size, MinSize)
	samples := opts.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}

	eval := tween.Evaluate
	if opts.Cached {
		eval = tween.Cached
	}

	lo, hi := 0.0, 1.0
	for _, c := range curves {
		for i := 0; i <= samples; i++ {
			v := eval(c, float64(i)/float64(samples))
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}

	margin := float64(size) / 10
	f := frame{
		left: margin, top: margin,
		right: float64(size) - margin, bottom: float64(size) - margin,
		lo: lo, hi: hi,
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	grid := vector.NewRasterizer(size, size)
	for _, v := range []float64{0.25, 0.5, 0.75} {
		segment(grid, f.x(v), f.top, f.x(v), f.bottom, 0.5)
		segment(grid, f.left, f.y(v), f.right, f.y(v), 0.5)
	}
	grid.Draw(img, img.Bounds(), image.NewUniform(gridColor), image.Point{})

	axes := vector.NewRasterizer(size, size)
	for _, v := range []float64{0, 1} {
		segment(axes, f.x(v), f.top, f.x(v), f.bottom, 0.75)
		segment(axes, f.left, f.y(v), f.right, f.y(v), 0.75)
	}
	axes.Draw(img, img.Bounds(), image.NewUniform(axisColor), image.Point{})

	for i, c := range curves {
		z := vector.NewRasterizer(size, size)
		px, py := f.x(0), f.y(eval(c, 0))
		for s := 1; s <= samples; s++ {
			phase := float64(s) / float64(samples)
			x, y := f.x(phase), f.y(eval(c, phase))
			segment(z, px, py, x, y, strokeWidth)
			px, py = x, y
		}
		z.Draw(img, img.Bounds(), image.NewUniform(Color(i)), image.Point{})
	}

	label(img, curves, margin)
	return img
}

// segment adds a thick line from (x0, y0) to (x1, y1) as a closed quad.
func segment(z *vector.Rasterizer, x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
}

// label writes each curve's name in its stroke color down the top-left
// corner.
func label(img *image.RGBA, curves []tween.Curve, margin float64) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	x := int(margin) + 4
	y := int(margin) + face.Metrics().Ascent.Ceil()
	for i, c := range curves {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(Color(i)),
			Face: face,
			Dot:  fixed.P(x, y+i*lineHeight),
		}
		d.DrawString(c.String())
	}
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
