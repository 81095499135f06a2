// Package theme provides color schemes and size classes for cloud scenes.
//
// A [Theme] pairs a sky gradient, which fills the canvas background, and a
// cloud gradient, which fills every cloud from top to bottom, with the size
// classes handed to [cloudgen.Generate]. Four themes are built in; others can be
// loaded from YAML documents of the form
//
//	name: sunset
//	width: 1000
//	height: 1000
//	sky:
//	  - {offset: 0, color: "#8e728b"}
//	  - {offset: 1, color: "#fc8f5f"}
//	cloud:
//	  - {offset: 0, color: white}
//	classes:
//	  - name: large
//	    count: 8
//	    humps: {min: 6, max: 9}
//	    radius_x: {min: 75, max: 130}
//	    radius_y: {min: 50, max: 65}
//	    min_hump_radius: {min: 29, max: 39}
//	    max_hump_radius: {min: 40, max: 48}
//	    hump_noise: {min: 17, max: 27}
package theme

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	cloudgen "github.com/Erkaman/cloud-gen"
)

// Canvas size used when a theme doesn't specify one.
const (
	DefaultWidth  = 1000
	DefaultHeight = 1000
)

// ErrUnknownTheme is returned by [Lookup] for names not in the catalog.
var ErrUnknownTheme = errors.New("unknown theme")

// Stop is one color stop of a vertical gradient.
type Stop struct {
	// Position of the stop between the top (0) and the bottom (1) of the
	// filled area.
	Offset float64 `yaml:"offset"`
	// A #rgb or #rrggbb hex triplet or an SVG color keyword.
	Color string `yaml:"color"`
}

// Gradient is a vertical linear gradient. Stops must be sorted by offset.
type Gradient []Stop

// Validate reports whether g has at least one stop, ordered offsets within
// [0, 1] and parseable colors.
func (g Gradient) Validate() error {
	if len(g) == 0 {
		return errors.New("gradient has no stops")
	}
	prev := 0.0
	for i, s := range g {
		if s.Offset < prev || s.Offset > 1 {
			return fmt.Errorf("stop %d: offset %g out of order or outside [0, 1]", i, s.Offset)
		}
		prev = s.Offset
		if _, err := ParseColor(s.Color); err != nil {
			return fmt.Errorf("stop %d: %w", i, err)
		}
	}
	return nil
}

type Theme struct {
	Name    string               `yaml:"name"`
	Width   float64              `yaml:"width,omitempty"`
	Height  float64              `yaml:"height,omitempty"`
	Sky     Gradient             `yaml:"sky"`
	Cloud   Gradient             `yaml:"cloud"`
	Classes []cloudgen.SizeClass `yaml:"classes"`
}

// Validate checks the gradients and size classes of t.
func (t Theme) Validate() error {
	var errs []error
	if err := t.Sky.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sky: %w", err))
	}
	if err := t.Cloud.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("cloud: %w", err))
	}
	if err := t.Request(0).Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("theme %q: %w", t.Name, err)
	}
	return nil
}

// Request returns the scene request for t with the given seed.
func (t Theme) Request(seed uint64) cloudgen.Request {
	return cloudgen.Request{
		Width:   t.Width,
		Height:  t.Height,
		Seed:    seed,
		Classes: t.Classes,
	}
}

// Load decodes a single theme from YAML. A missing canvas size defaults to
// [DefaultWidth] × [DefaultHeight]. The theme is validated.
func Load(r io.Reader) (Theme, error) {
	var t Theme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Theme{}, fmt.Errorf("decoding theme: %w", err)
	}
	if t.Width == 0 {
		t.Width = DefaultWidth
	}
	if t.Height == 0 {
		t.Height = DefaultHeight
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a theme from the named YAML file.
func LoadFile(name string) (Theme, error) {
	f, err := os.Open(name)
	if err != nil {
		return Theme{}, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
