package cloudgen

import (
	"errors"
	"fmt"
	"math"
)

// Bounds of the hump count. MinHumps is the smallest count that yields a
// non-degenerate outline.
const (
	MinHumps = 3
	MaxHumps = 1024
)

// HumpParams are the concrete parameters of a single cloud.
type HumpParams struct {
	// Number of humps, one per edge of the polygon inscribed in the base
	// ellipse.
	Humps int
	// Radii of the base ellipse.
	Radii Vec2
	// Each hump's control points are offset from the edge by a distance drawn
	// from [MinHumpRadius, MaxHumpRadius].
	MinHumpRadius float64
	MaxHumpRadius float64
	// Every control point coordinate is displaced by up to ±HumpNoise.
	HumpNoise float64
}

// Validate reports whether p describes a non-degenerate cloud.
func (p HumpParams) Validate() error {
	var errs []error
	if p.Humps < MinHumps || p.Humps > MaxHumps {
		errs = append(errs, fmt.Errorf("hump count %d is outside [%d, %d]", p.Humps, MinHumps, MaxHumps))
	}
	if !(p.Radii.X > 0) || !(p.Radii.Y > 0) || p.Radii.IsInf() {
		errs = append(errs, fmt.Errorf("ellipse radii %s must be positive and finite", p.Radii))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"minimum hump radius", p.MinHumpRadius},
		{"maximum hump radius", p.MaxHumpRadius},
		{"hump noise", p.HumpNoise},
	} {
		if !(f.v >= 0) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%s %g must be non-negative and finite", f.name, f.v))
		}
	}
	return errors.Join(errs...)
}

// Cloud is an accepted cloud shape.
type Cloud struct {
	// Index of the size class the cloud was generated for.
	Class   int
	Outline Outline
	// Bounds approximates the outline's bounding box, see [BoundsSamples].
	Bounds AABB
}

// SynthesizeCloud builds a cloud outline around an ellipse centered at center.
//
// The ellipse is sampled at p.Humps equally spaced angles, starting at a random
// phase. Every edge between consecutive samples becomes one cubic Bézier whose
// control points sit at the edge's end points, pushed outwards along the edge
// normal by a random hump radius and then jittered by the hump noise.
//
// SynthesizeCloud consumes exactly 1 + 5·p.Humps values from rng. The result
// is undefined for parameters that don't pass [HumpParams.Validate].
func SynthesizeCloud(rng *Rand, center Point, p HumpParams) Cloud {
	phase := rng.Uniform(0, 2)
	anchors := NewEllipse(center, p.Radii).Anchors(p.Humps, phase)

	outline := make(Outline, len(anchors))
	for i, start := range anchors {
		end := anchors[(i+1)%len(anchors)]
		normal := end.Sub(start).Normalize().Turn90().Normalize()
		r := rng.Uniform(p.MinHumpRadius, p.MaxHumpRadius)

		cp0 := start.Translate(normal.Mul(r))
		cp1 := end.Translate(normal.Mul(r))
		cp0.X += rng.Uniform(-p.HumpNoise, p.HumpNoise)
		cp0.Y += rng.Uniform(-p.HumpNoise, p.HumpNoise)
		cp1.X += rng.Uniform(-p.HumpNoise, p.HumpNoise)
		cp1.Y += rng.Uniform(-p.HumpNoise, p.HumpNoise)

		outline[i] = CubicBez{P0: start, P1: cp0, P2: cp1, P3: end}
	}

	return Cloud{
		Outline: outline,
		Bounds:  outline.SampledBounds(BoundsSamples),
	}
}
