package cloudgen

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of an outline. Renderers consume
// outlines as sequences of path elements.
//
// A valid sequence starts with MoveTo.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Outline is a closed loop of cubic Béziers. Each segment starts where the
// previous one ends, and the last segment ends at the first one's start.
type Outline []CubicBez

// Start returns the start point of the outline's first segment.
func (o Outline) Start() Point {
	if len(o) == 0 {
		return Point{}
	}
	return o[0].P0
}

// Closed reports whether the segments form a closed loop. Points are compared
// exactly. The empty outline is not closed.
func (o Outline) Closed() bool {
	if len(o) == 0 {
		return false
	}
	for i, seg := range o {
		next := o[(i+1)%len(o)]
		if seg.P3 != next.P0 {
			return false
		}
	}
	return true
}

// SampledBounds returns the union of [CubicBez.SampledBounds] over all
// segments.
func (o Outline) SampledBounds(n int) AABB {
	b := EmptyAABB()
	for _, seg := range o {
		b = b.Union(seg.SampledBounds(n))
	}
	return b
}

// Elements returns the outline as a MoveTo, one CubicTo per segment, and a
// final ClosePath.
func (o Outline) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(o) == 0 {
			return
		}
		if !yield(MoveTo(o[0].P0)) {
			return
		}
		for _, seg := range o {
			if !yield(CubicTo(seg.P1, seg.P2, seg.P3)) {
				return
			}
		}
		yield(ClosePath())
	}
}
