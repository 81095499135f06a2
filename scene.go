package cloudgen

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// DefaultClassAttempts bounds how many clouds the composer tries to place for a
// single size class. Each try runs up to the placement attempt budget, so a
// class costs at most DefaultClassAttempts × DefaultMaxAttempts synthesized
// outlines.
const DefaultClassAttempts = 100

// ErrInvalidRequest is wrapped by all errors reporting a malformed [Request].
var ErrInvalidRequest = errors.New("invalid scene request")

// Range is a closed interval of parameter values.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// R returns the range [lo, hi].
func R(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) &&
		r.Min <= r.Max
}

// SizeClass describes a group of clouds sharing one set of parameter ranges.
// The parameters of every cloud are drawn fresh from these ranges.
type SizeClass struct {
	Name string `yaml:"name"`
	// Number of clouds the composer tries to place.
	Count int `yaml:"count"`
	// The hump count is drawn from Humps and truncated to an integer, so
	// Humps.Max itself is practically never chosen.
	Humps   Range `yaml:"humps"`
	RadiusX Range `yaml:"radius_x"`
	RadiusY Range `yaml:"radius_y"`
	// The lower and upper bounds of a cloud's hump radius are drawn from these
	// two ranges.
	MinHumpRadius Range `yaml:"min_hump_radius"`
	MaxHumpRadius Range `yaml:"max_hump_radius"`
	HumpNoise     Range `yaml:"hump_noise"`
}

// Validate reports whether every cloud drawn from c would pass
// [HumpParams.Validate].
func (c SizeClass) Validate() error {
	var errs []error
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("count %d is negative", c.Count))
	}
	ranges := []struct {
		name     string
		r        Range
		positive bool
	}{
		{"humps", c.Humps, true},
		{"radius_x", c.RadiusX, true},
		{"radius_y", c.RadiusY, true},
		{"min_hump_radius", c.MinHumpRadius, false},
		{"max_hump_radius", c.MaxHumpRadius, false},
		{"hump_noise", c.HumpNoise, false},
	}
	for _, f := range ranges {
		switch {
		case !f.r.valid():
			errs = append(errs, fmt.Errorf("%s %s is not a finite, ordered range", f.name, f.r))
		case f.positive && f.r.Min <= 0:
			errs = append(errs, fmt.Errorf("%s %s must be positive", f.name, f.r))
		case f.r.Min < 0:
			errs = append(errs, fmt.Errorf("%s %s must be non-negative", f.name, f.r))
		}
	}
	if c.Humps.valid() && (c.Humps.Min < MinHumps || c.Humps.Max > MaxHumps) {
		errs = append(errs, fmt.Errorf("humps %s must lie within [%d, %d]", c.Humps, MinHumps, MaxHumps))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("size class %q: %w", c.Name, err)
	}
	return nil
}

// sample draws the parameters of one cloud. It consumes six values from rng.
func (c SizeClass) sample(rng *Rand) HumpParams {
	humps := int(rng.Uniform(c.Humps.Min, c.Humps.Max))
	rx := rng.Uniform(c.RadiusX.Min, c.RadiusX.Max)
	ry := rng.Uniform(c.RadiusY.Min, c.RadiusY.Max)
	minRad := rng.Uniform(c.MinHumpRadius.Min, c.MinHumpRadius.Max)
	maxRad := rng.Uniform(c.MaxHumpRadius.Min, c.MaxHumpRadius.Max)
	noise := rng.Uniform(c.HumpNoise.Min, c.HumpNoise.Max)
	return HumpParams{
		Humps:         humps,
		Radii:         Vec(rx, ry),
		MinHumpRadius: minRad,
		MaxHumpRadius: maxRad,
		HumpNoise:     noise,
	}
}

// Request describes a scene to generate.
type Request struct {
	Width  float64
	Height float64
	Seed   uint64
	// Classes are processed in order; earlier classes get first pick of the
	// canvas.
	Classes []SizeClass
}

// Validate reports whether r can be generated.
func (r Request) Validate() error {
	var errs []error
	if !(r.Width > 0) || !(r.Height > 0) || math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0) {
		errs = append(errs, fmt.Errorf("canvas size %g×%g must be positive and finite", r.Width, r.Height))
	}
	for _, c := range r.Classes {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// ClassResult records how generation went for one size class.
type ClassResult struct {
	Name   string
	Target int
	Placed int
	// Number of clouds the composer tried to place, successful or not.
	Attempts int
}

// Short reports whether fewer clouds than requested were placed.
func (cr ClassResult) Short() bool {
	return cr.Placed < cr.Target
}

// Scene is a generated set of clouds.
type Scene struct {
	Width  float64
	Height float64
	Seed   uint64
	// Clouds in the order they were accepted.
	Clouds []Cloud
	// One entry per requested size class.
	Classes []ClassResult
}

// Canvas returns the box [0, Width] × [0, Height].
func (s *Scene) Canvas() AABB {
	return NewAABB(0, 0, s.Width, s.Height)
}

// Bounds returns the bounding boxes of all clouds, in order.
func (s *Scene) Bounds() []AABB {
	out := make([]AABB, len(s.Clouds))
	for i, c := range s.Clouds {
		out[i] = c.Bounds
	}
	return out
}

// Option configures [Generate].
type Option func(*composer)

// WithLogger sets the logger that receives placement diagnostics. By default
// nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *composer) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}

// WithMaxAttempts sets the number of candidate positions tried per cloud.
// The default is [DefaultMaxAttempts].
func WithMaxAttempts(n int) Option {
	return func(c *composer) { c.maxAttempts = n }
}

// WithClassAttempts sets the number of clouds tried per size class.
// The default is [DefaultClassAttempts].
func WithClassAttempts(n int) Option {
	return func(c *composer) { c.classAttempts = n }
}

type composer struct {
	log           *zap.Logger
	maxAttempts   int
	classAttempts int

	rng    *Rand
	scene  *Scene
	placed []AABB
}

// Generate composes a scene. Size classes are filled in order; each class
// stops as soon as its count is reached or its attempt budget is exhausted,
// in which case the scene holds fewer clouds than requested for that class.
// Such shortfalls are reported in [Scene.Classes], not as errors.
//
// The scene is a pure function of the request and the attempt budgets.
func Generate(req Request, opts ...Option) (*Scene, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &composer{
		log:           zap.NewNop(),
		maxAttempts:   DefaultMaxAttempts,
		classAttempts: DefaultClassAttempts,
		rng:           NewRand(req.Seed),
		scene: &Scene{
			Width:   req.Width,
			Height:  req.Height,
			Seed:    req.Seed,
			Classes: make([]ClassResult, len(req.Classes)),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	for i, class := range req.Classes {
		c.scene.Classes[i] = c.fill(i, class)
	}
	return c.scene, nil
}

// fill places the clouds of one size class.
func (c *composer) fill(index int, class SizeClass) ClassResult {
	res := ClassResult{Name: class.Name, Target: class.Count}
	canvas := c.scene.Canvas()
	log := c.log.With(zap.String("class", class.Name), zap.Int("index", index))

	for res.Placed < class.Count && res.Attempts < c.classAttempts {
		res.Attempts++
		params := class.sample(c.rng)
		cloud, ok := Place(c.rng, canvas, c.placed, params, c.maxAttempts)
		if !ok {
			log.Debug("gave up placing cloud",
				zap.Int("attempt", res.Attempts),
				zap.Int("humps", params.Humps),
				zap.Int("max_attempts", c.maxAttempts))
			continue
		}
		cloud.Class = index
		c.scene.Clouds = append(c.scene.Clouds, cloud)
		c.placed = append(c.placed, cloud.Bounds)
		res.Placed++
	}

	fields := []zap.Field{
		zap.Int("target", res.Target),
		zap.Int("placed", res.Placed),
		zap.Int("attempts", res.Attempts),
	}
	if res.Short() {
		log.Warn("size class incomplete, canvas too crowded", fields...)
	} else {
		log.Info("size class placed", fields...)
	}
	return res
}
