package vmath

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt restricts x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// CirclesOverlap reports whether two circles touch or intersect.
// Uses squared distance to avoid the sqrt.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	rr := r1 + r2
	return dx*dx+dy*dy <= rr*rr
}
