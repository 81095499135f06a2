package cloudgen

import (
	"fmt"
	"math"
)

// AABB is an axis-aligned bounding box.
//
// The zero value is the degenerate box at the origin. Use [EmptyAABB] to
// start accumulating points.
type AABB struct {
	Min Point
	Max Point
}

// EmptyAABB returns the box that contains no points: its minimum is +∞ and its
// maximum is −∞ on both axes. Expanding it by a point yields the zero-area box
// at that point.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Point{X: inf, Y: inf},
		Max: Point{X: -inf, Y: -inf},
	}
}

// NewAABB returns the box spanning x0..x1 and y0..y1, ensuring that width and
// height are non-negative.
func NewAABB(x0, y0, x1, y1 float64) AABB {
	return AABB{
		Min: Point{X: min(x0, x1), Y: min(y0, y1)},
		Max: Point{X: max(x0, x1), Y: max(y0, y1)},
	}
}

func (b AABB) String() string {
	return fmt.Sprintf("[%s, %s]", b.Min, b.Max)
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width returns the box's width. It is −∞ for the empty box.
func (b AABB) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the box's height. It is −∞ for the empty box.
func (b AABB) Height() float64 {
	return b.Max.Y - b.Min.Y
}

func (b AABB) Center() Point {
	return Point{
		X: b.Min.X + 0.5*b.Width(),
		Y: b.Min.Y + 0.5*b.Height(),
	}
}

// Expand returns the smallest box enclosing b and pt. If pt is already inside
// b, the result equals b.
func (b AABB) Expand(pt Point) AABB {
	return AABB{
		Min: Point{X: min(b.Min.X, pt.X), Y: min(b.Min.Y, pt.Y)},
		Max: Point{X: max(b.Max.X, pt.X), Y: max(b.Max.Y, pt.Y)},
	}
}

// Union returns the smallest box enclosing b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Point{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y)},
		Max: Point{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether pt lies inside b, including its edges.
func (b AABB) Contains(pt Point) bool {
	return pt.X >= b.Min.X &&
		pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y &&
		pt.Y <= b.Max.Y
}

// ContainsAABB reports whether o lies entirely inside b. Boxes sharing an edge
// with b are contained. The empty box is not contained in any box.
func (b AABB) ContainsAABB(o AABB) bool {
	return !o.IsEmpty() &&
		o.Min.X >= b.Min.X &&
		o.Min.Y >= b.Min.Y &&
		o.Max.X <= b.Max.X &&
		o.Max.Y <= b.Max.Y
}

// Overlaps reports whether the interiors of b and o intersect. Boxes that only
// touch along an edge or at a corner do not overlap. The test compares center
// distances against summed extents on each axis and is symmetric in b and o.
//
// An empty box overlaps nothing.
func (b AABB) Overlaps(o AABB) bool {
	bw, bh := b.Width(), b.Height()
	ow, oh := o.Width(), o.Height()
	bc, oc := b.Center(), o.Center()
	return math.Abs(bc.X-oc.X)*2 < bw+ow &&
		math.Abs(bc.Y-oc.Y)*2 < bh+oh
}
