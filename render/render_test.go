package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cloudgen "github.com/Erkaman/cloud-gen"
	"github.com/Erkaman/cloud-gen/theme"
)

func blueSky(t *testing.T) (*cloudgen.Scene, theme.Theme) {
	t.Helper()
	th, err := theme.Lookup(theme.BlueSky)
	require.NoError(t, err)
	s, err := cloudgen.Generate(th.Request(0))
	require.NoError(t, err)
	require.NotEmpty(t, s.Clouds)
	return s, th
}

func TestPathData(t *testing.T) {
	o := cloudgen.Outline{
		{P0: cloudgen.Pt(0, 0), P1: cloudgen.Pt(1, -1), P2: cloudgen.Pt(2, -1), P3: cloudgen.Pt(3, 0)},
		{P0: cloudgen.Pt(3, 0), P1: cloudgen.Pt(2, 1.5), P2: cloudgen.Pt(1, 1.25), P3: cloudgen.Pt(0, 0)},
	}
	want := "M0.000,0.000" +
		" C1.000,-1.000 2.000,-1.000 3.000,0.000" +
		" C2.000,1.500 1.000,1.250 0.000,0.000" +
		" Z"
	assert.Equal(t, want, PathData(o))
	assert.Empty(t, PathData(nil))
}

func TestWriteSVG(t *testing.T) {
	s, th := blueSky(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, s, th))
	doc := buf.String()

	assert.True(t, strings.HasPrefix(doc, "<?xml"), "missing XML declaration")
	assert.Contains(t, doc, `width="1000"`)
	assert.Contains(t, doc, `height="1000"`)
	assert.Contains(t, doc, `id="`+SkyGradientID+`"`)
	assert.Contains(t, doc, `id="`+CloudGradientID+`"`)
	assert.Contains(t, doc, `stop-color="#8888bb"`)
	assert.Contains(t, doc, `fill="url(#`+CloudGradientID+`)"`)
	assert.Equal(t, len(s.Clouds), strings.Count(doc, "<path "))
	for _, c := range s.Clouds {
		assert.Contains(t, doc, PathData(c.Outline))
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</svg>"))
}

func TestWriteSVGRoundsCanvasUp(t *testing.T) {
	th, err := theme.Lookup(theme.BlueSky)
	require.NoError(t, err)
	th.Width, th.Height = 640.25, 480
	s, err := cloudgen.Generate(th.Request(0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, s, th))
	assert.Contains(t, buf.String(), `width="641"`)
	assert.Contains(t, buf.String(), `height="480"`)
}

func TestWriteSVGDeterministic(t *testing.T) {
	s1, th := blueSky(t)
	s2, _ := blueSky(t)
	var a, b bytes.Buffer
	require.NoError(t, WriteSVG(&a, s1, th))
	require.NoError(t, WriteSVG(&b, s2, th))
	assert.Equal(t, a.String(), b.String())
}

type failingWriter struct{ n int }

var errDiskFull = errors.New("disk full")

func (fw *failingWriter) Write(b []byte) (int, error) {
	if fw.n <= 0 {
		return 0, errDiskFull
	}
	fw.n--
	return len(b), nil
}

func TestWriteSVGReportsWriteErrors(t *testing.T) {
	s, th := blueSky(t)
	err := WriteSVG(&failingWriter{n: 3}, s, th)
	assert.ErrorIs(t, err, errDiskFull)
}

func TestWriteSVGInvalidTheme(t *testing.T) {
	s, th := blueSky(t)
	th.Cloud = nil
	var buf bytes.Buffer
	assert.Error(t, WriteSVG(&buf, s, th))
	assert.Zero(t, buf.Len())
}

func TestWritePNG(t *testing.T) {
	s, th := blueSky(t)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, s, th, 0.25))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 250, img.Bounds().Dx())
	assert.Equal(t, 250, img.Bounds().Dy())

	// the top left corner is bare sky
	assert.Equal(t, color.RGBAModel.Convert(color.RGBA{0x55, 0x9d, 0xcc, 0xff}), color.RGBAModel.Convert(img.At(0, 0)))
}

func TestRasterizeFillsClouds(t *testing.T) {
	s, th := blueSky(t)
	img, err := Rasterize(s, th, 1)
	require.NoError(t, err)

	for i, c := range s.Clouds {
		// The box center is well inside the base ellipse, and the top half of
		// blue-sky's cloud gradient is white.
		center := c.Bounds.Center()
		x, y := int(center.X), int(center.Y)-2
		got := img.RGBAAt(x, y)
		for _, v := range []uint8{got.R, got.G, got.B} {
			assert.GreaterOrEqual(t, v, uint8(0xfd), "cloud %d at (%d, %d) is %v, want white", i, x, y, got)
		}
	}
}

func TestRasterizeInvalidScale(t *testing.T) {
	s, th := blueSky(t)
	for _, scale := range []float64{0, -1} {
		_, err := Rasterize(s, th, scale)
		assert.Error(t, err, "scale %v", scale)
	}
}

func TestGradientColorAt(t *testing.T) {
	g, err := newGradient(theme.Gradient{{Offset: 0.25, Color: "#000000"}, {Offset: 0.75, Color: "#ffffff"}}, 0, 100)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, g.colorAt(0))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, g.colorAt(0.25))
	assert.Equal(t, color.RGBA{0x80, 0x80, 0x80, 0xff}, g.colorAt(0.5))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, g.colorAt(0.75))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, g.colorAt(2))
}
