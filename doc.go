// Package cloudgen procedurally generates scenes of cartoon clouds for use as
// vector artwork.
//
// # Clouds
//
// A cloud is a closed [Outline] of cubic Béziers ("humps") built around an
// axis-aligned [Ellipse]. [SynthesizeCloud] samples points on the ellipse at
// equal angles and replaces every edge of the resulting polygon with a cubic
// whose control points are pushed outwards along the edge normal and then
// jittered, giving the irregular, bumpy silhouette of a cloud.
//
// Each cloud carries an [AABB] approximating its bounding box. The box is
// computed by evaluating every segment at [BoundsSamples] parameter values
// rather than analytically; sampled points always lie on the curve, so the
// approximation can only underestimate the exact box, by an amount bounded by
// the sampling step.
//
// # Scenes
//
// [Generate] fills a canvas with clouds from an ordered list of [SizeClass]
// values. Candidate positions are found by rejection sampling (see [Place]):
// a candidate is discarded if its box leaves the canvas or overlaps the box of
// an already accepted cloud. Both the number of candidates per cloud and the
// number of clouds tried per class are bounded, so generation always
// terminates, at the cost of occasionally placing fewer clouds than requested.
//
// # Determinism
//
// All randomness comes from a [Rand] owned by a single call to [Generate].
// Identical requests produce identical scenes, and independent scenes may be
// generated concurrently.
//
// # Rendering
//
// This package performs no I/O. Outlines can be converted to drawing commands
// with [Outline.Elements]; the render sub-package turns scenes into SVG
// documents and PNG images, and the theme sub-package provides ready-made
// size classes and color schemes.
package cloudgen
