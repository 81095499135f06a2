package cloudgen

import (
	"math"
)

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center Point
	// Radii along the x and y axes.
	Radii Vec2
}

// NewEllipse returns the ellipse with the given center and radii.
func NewEllipse(center Point, radii Vec2) Ellipse {
	return Ellipse{Center: center, Radii: radii}
}

// PointAt returns the point on the ellipse at angle th, which is expressed in
// radians. With th = 0 the point lies on the positive x axis through the center.
func (e Ellipse) PointAt(th float64) Point {
	sin, cos := math.Sincos(th)
	return e.Center.Translate(
		Vec2{
			X: cos * e.Radii.X,
			Y: sin * e.Radii.Y,
		})
}

// Anchors returns n points spaced at equal angles around the ellipse, the first
// at angle phase.
func (e Ellipse) Anchors(n int, phase float64) []Point {
	pts := make([]Point, max(n, 0))
	for i := range pts {
		th := float64(i)/float64(n)*2*math.Pi + phase
		pts[i] = e.PointAt(th)
	}
	return pts
}

// BoundingBox returns the exact bounding box of the ellipse.
func (e Ellipse) BoundingBox() AABB {
	rx, ry := math.Abs(e.Radii.X), math.Abs(e.Radii.Y)
	return NewAABB(
		e.Center.X-rx, e.Center.Y-ry,
		e.Center.X+rx, e.Center.Y+ry,
	)
}
