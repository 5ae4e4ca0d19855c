// Package plot renders resampled spectral curves for visual inspection.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/browser"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/cwbudde/algo-specsens/spectral"
)

// ErrNilCurve indicates a missing curve.
var ErrNilCurve = errors.New("plot: nil curve")

// Channel stroke colours, indexed by spectral.Channel.
var channelColors = [spectral.NumChannels]color.RGBA{
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
}

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	axisColor  = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	gridColor  = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	textColor  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

const (
	marginLeft   = 48
	marginRight  = 16
	marginTop    = 28
	marginBottom = 36
	strokeWidth  = 2
)

type config struct {
	width  int
	height int
	title  string
}

// Option configures rendering.
type Option func(*config)

// WithSize sets the image size in pixels. Values below 200x150 are ignored.
func WithSize(width, height int) Option {
	return func(cfg *config) {
		if width >= 200 && height >= 150 {
			cfg.width, cfg.height = width, height
		}
	}
}

// WithTitle draws a title above the plot area.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// Render draws the three channel curves over the grid with wavelength and
// response axes.
func Render(c *spectral.ResampledCurve, opts ...Option) (*image.RGBA, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	cfg := config{width: 800, height: 500}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	area := image.Rect(marginLeft, marginTop, cfg.width-marginRight, cfg.height-marginBottom)
	ymax := 1.0
	for i := 0; i < c.Len(); i++ {
		for _, v := range c.At(i) {
			ymax = math.Max(ymax, v)
		}
	}
	ymax *= 1.05

	xmin, xmax := c.Grid[0], c.Grid[spectral.GridSize-1]
	toX := func(w float64) float32 {
		return float32(area.Min.X) + float32((w-xmin)/(xmax-xmin))*float32(area.Dx())
	}
	toY := func(v float64) float32 {
		if v < 0 {
			v = 0
		}
		return float32(area.Max.Y) - float32(v/ymax)*float32(area.Dy())
	}

	drawGrid(img, area, toX, toY)

	pts := make([][2]float32, spectral.GridSize)
	for _, ch := range spectral.Channels {
		for i := range pts {
			pts[i] = [2]float32{toX(c.Grid[i]), toY(c.Values[i][ch])}
		}
		stroke(img, pts, strokeWidth, channelColors[ch])
	}

	if cfg.title != "" {
		label(img, cfg.title, cfg.width/2, marginTop-10, true)
	}
	return img, nil
}

func drawGrid(img *image.RGBA, area image.Rectangle, toX, toY func(float64) float32) {
	for w := float64(spectral.GridStart); w <= spectral.GridEnd; w += 50 {
		x := int(toX(w))
		fill(img, image.Rect(x, area.Min.Y, x+1, area.Max.Y), gridColor)
		label(img, fmt.Sprintf("%.0f", w), x, area.Max.Y+16, true)
	}
	for v := 0.0; v <= 1.0001; v += 0.25 {
		y := int(toY(v))
		fill(img, image.Rect(area.Min.X, y, area.Max.X, y+1), gridColor)
		label(img, fmt.Sprintf("%.2f", v), area.Min.X-40, y+4, false)
	}
	fill(img, image.Rect(area.Min.X, area.Max.Y, area.Max.X, area.Max.Y+1), axisColor)
	fill(img, image.Rect(area.Min.X, area.Min.Y, area.Min.X+1, area.Max.Y), axisColor)
	label(img, "wavelength (nm)", area.Min.X+area.Dx()/2, area.Max.Y+32, true)
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func label(img *image.RGBA, s string, x, y int, center bool) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
	}
	if center {
		x -= d.MeasureString(s).Ceil() / 2
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// stroke rasterises a polyline as one quad per segment. Segments all run
// left to right, so the quads share a winding and overlaps stay opaque.
func stroke(img *image.RGBA, pts [][2]float32, width float32, c color.Color) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	half := width / 2
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		dx, dy := q[0]-p[0], q[1]-p[1]
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		z.MoveTo(p[0]+nx, p[1]+ny)
		z.LineTo(q[0]+nx, q[1]+ny)
		z.LineTo(q[0]-nx, q[1]-ny)
		z.LineTo(p[0]-nx, p[1]-ny)
		z.ClosePath()
	}
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

// WritePNG renders c and encodes it as PNG.
func WritePNG(w io.Writer, c *spectral.ResampledCurve, opts ...Option) error {
	img, err := Render(c, opts...)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG renders c into a PNG file at path.
func SavePNG(path string, c *spectral.ResampledCurve, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, c, opts...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

var openFile = browser.OpenFile

// Show opens the image at path in the system viewer.
func Show(path string) error {
	return openFile(path)
}
