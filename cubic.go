package cloudgen

// BoundsSamples is the number of parameter values at which each segment of a
// cloud outline is evaluated to approximate its bounding box.
const BoundsSamples = 100

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t using the Bernstein form
// (1−t)³P0 + 3t(1−t)²P1 + 3t²(1−t)P2 + t³P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(3.0 * t * mt * mt)
	d := Vec2(c.P2).Mul(3.0 * t * t * mt)
	e := Vec2(c.P3).Mul(t * t * t)
	return Point(a.Add(b).Add(d).Add(e))
}

// SampledBounds approximates the curve's bounding box by evaluating it at
// t = i/n for i ∈ [0, n). The end point is not sampled; in a closed outline it
// is the start point of the following segment.
//
// The result is never larger than the exact bounding box, and for smooth curves
// its error shrinks with the sampling step. It returns the empty box for n ≤ 0.
func (c CubicBez) SampledBounds(n int) AABB {
	b := EmptyAABB()
	for i := range max(n, 0) {
		b = b.Expand(c.Eval(float64(i) / float64(n)))
	}
	return b
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}
