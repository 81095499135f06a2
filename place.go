package cloudgen

// DefaultMaxAttempts is the number of candidate positions tried for one cloud
// before giving up on it.
const DefaultMaxAttempts = 10

// Place finds a position for one cloud by rejection sampling.
//
// Each attempt draws a center uniformly inside canvas, synthesizes a cloud
// there, and rejects it if its bounds leave the canvas or overlap any of the
// boxes in placed. Every rejection counts against maxAttempts. Place reports
// false if no attempt was accepted.
func Place(rng *Rand, canvas AABB, placed []AABB, p HumpParams, maxAttempts int) (Cloud, bool) {
	for range maxAttempts {
		center := Pt(
			rng.Uniform(canvas.Min.X, canvas.Max.X),
			rng.Uniform(canvas.Min.Y, canvas.Max.Y),
		)
		c := SynthesizeCloud(rng, center, p)
		if !canvas.ContainsAABB(c.Bounds) {
			continue
		}
		if overlapsAny(c.Bounds, placed) {
			continue
		}
		return c, true
	}
	return Cloud{}, false
}

func overlapsAny(b AABB, boxes []AABB) bool {
	for _, o := range boxes {
		if b.Overlaps(o) {
			return true
		}
	}
	return false
}
