package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	cloudgen "github.com/Erkaman/cloud-gen"
	"github.com/Erkaman/cloud-gen/theme"
)

// gradient is a vertical linear gradient spanning y0..y1 in image space. It is
// an infinite image; rows above y0 and below y1 repeat the first and last
// colors.
type gradient struct {
	y0, y1  float64
	offsets []float64
	colors  []color.RGBA
}

func newGradient(g theme.Gradient, y0, y1 float64) (*gradient, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	gr := &gradient{y0: y0, y1: y1}
	for _, s := range g {
		c, err := theme.ParseColor(s.Color)
		if err != nil {
			return nil, err
		}
		gr.offsets = append(gr.offsets, s.Offset)
		gr.colors = append(gr.colors, c)
	}
	return gr, nil
}

func (g *gradient) ColorModel() color.Model { return color.RGBAModel }

func (g *gradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *gradient) At(x, y int) color.Color {
	t := 0.0
	if h := g.y1 - g.y0; h > 0 {
		t = (float64(y) + 0.5 - g.y0) / h
	}
	return g.colorAt(t)
}

func (g *gradient) colorAt(t float64) color.RGBA {
	n := len(g.offsets)
	if t <= g.offsets[0] {
		return g.colors[0]
	}
	for i := 1; i < n; i++ {
		if t > g.offsets[i] {
			continue
		}
		span := g.offsets[i] - g.offsets[i-1]
		if span == 0 {
			return g.colors[i]
		}
		return lerpRGBA(g.colors[i-1], g.colors[i], (t-g.offsets[i-1])/span)
	}
	return g.colors[n-1]
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Rasterize draws s into a new image scaled by scale. The sky gradient spans
// the whole canvas and the cloud gradient spans each cloud's bounding box,
// matching the SVG output.
func Rasterize(s *cloudgen.Scene, th theme.Theme, scale float64) (*image.RGBA, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("scale %g must be positive and finite", scale)
	}
	w, h := int(math.Ceil(s.Width*scale)), int(math.Ceil(s.Height*scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New("scene has an empty canvas")
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sky, err := newGradient(th.Sky, 0, float64(h))
	if err != nil {
		return nil, fmt.Errorf("sky: %w", err)
	}
	draw.Draw(img, img.Bounds(), sky, image.Point{}, draw.Src)

	z := vector.NewRasterizer(w, h)
	f := func(v float64) float32 { return float32(v * scale) }
	for _, c := range s.Clouds {
		fill, err := newGradient(th.Cloud, c.Bounds.Min.Y*scale, c.Bounds.Max.Y*scale)
		if err != nil {
			return nil, fmt.Errorf("cloud: %w", err)
		}
		z.Reset(w, h)
		for el := range c.Outline.Elements() {
			switch el.Kind {
			case cloudgen.MoveToKind:
				z.MoveTo(f(el.P0.X), f(el.P0.Y))
			case cloudgen.CubicToKind:
				z.CubeTo(
					f(el.P0.X), f(el.P0.Y),
					f(el.P1.X), f(el.P1.Y),
					f(el.P2.X), f(el.P2.Y),
				)
			case cloudgen.ClosePathKind:
				z.ClosePath()
			}
		}
		z.Draw(img, img.Bounds(), fill, image.Point{})
	}
	return img, nil
}

// WritePNG rasterizes s at the given scale and encodes it as PNG.
func WritePNG(w io.Writer, s *cloudgen.Scene, th theme.Theme, scale float64) error {
	img, err := Rasterize(s, th, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
