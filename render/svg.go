// Package render draws cloud scenes as SVG documents and PNG images.
package render

import (
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	cloudgen "github.com/Erkaman/cloud-gen"
	"github.com/Erkaman/cloud-gen/theme"
)

// Gradient ids used in SVG output.
const (
	SkyGradientID   = "skyGradient"
	CloudGradientID = "cloudGradient"
)

// errWriter remembers the first error returned by w and discards subsequent
// writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// WriteSVG writes s as a standalone SVG document. The sky gradient of th fills
// the canvas; every cloud is a path filled with the cloud gradient, which is
// stretched over each cloud's own bounding box.
//
// The document's width and height are the canvas size rounded up to whole
// units, so a fractional canvas leaves a sliver of bare sky at the right and
// bottom edges. [Rasterize] scales the exact canvas size instead.
func WriteSVG(w io.Writer, s *cloudgen.Scene, th theme.Theme) error {
	if err := th.Sky.Validate(); err != nil {
		return err
	}
	if err := th.Cloud.Validate(); err != nil {
		return err
	}

	ew := &errWriter{w: w}
	width, height := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Def()
	canvas.LinearGradient(SkyGradientID, 0, 0, 0, 100, offcolors(th.Sky))
	canvas.LinearGradient(CloudGradientID, 0, 0, 0, 100, offcolors(th.Cloud))
	canvas.DefEnd()
	canvas.Rect(0, 0, width, height, `fill="url(#`+SkyGradientID+`)"`)
	canvas.Group(`fill="url(#`+CloudGradientID+`)"`, `stroke="none"`)
	for _, c := range s.Clouds {
		canvas.Path(PathData(c.Outline))
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

func offcolors(g theme.Gradient) []svg.Offcolor {
	out := make([]svg.Offcolor, len(g))
	for i, stop := range g {
		out[i] = svg.Offcolor{
			Offset:  uint8(math.Round(stop.Offset * 100)),
			Color:   stop.Color,
			Opacity: 1,
		}
	}
	return out
}

// PathData returns the outline in SVG path syntax, using absolute MoveTo,
// CurveTo and ClosePath commands. Coordinates are rounded to three decimals.
func PathData(o cloudgen.Outline) string {
	var b []byte
	pt := func(p cloudgen.Point) {
		b = strconv.AppendFloat(b, p.X, 'f', 3, 64)
		b = append(b, ',')
		b = strconv.AppendFloat(b, p.Y, 'f', 3, 64)
	}
	for el := range o.Elements() {
		switch el.Kind {
		case cloudgen.MoveToKind:
			b = append(b, 'M')
			pt(el.P0)
		case cloudgen.CubicToKind:
			b = append(b, " C"...)
			pt(el.P0)
			b = append(b, ' ')
			pt(el.P1)
			b = append(b, ' ')
			pt(el.P2)
		case cloudgen.ClosePathKind:
			b = append(b, " Z"...)
		}
	}
	return string(b)
}
