package advanced

import (
	"fmt"
	"math"
)

// Input validation. Geometric degeneracy (self-intersections, overlapping
// edges, slivers) is never an error, but a ring the caller hands us with
// fewer than three points, all points coincident, or a NaN coordinate is a
// caller bug, and silently dropping it would hide that. These checks run
// before any arrangement is built, so a failed operation never returns a
// partial result.

func validateOperand(k Kernel, name string, mp MultiPolygon) {
	for pi, poly := range mp {
		validateRing(k, name, pi, "outer", poly.Outer)
		for hi, hole := range poly.Holes {
			validateRing(k, name, pi, holeName(hi), hole)
		}
	}
}

func validateRing(k Kernel, operand string, polygon int, ring string, r Ring) {
	if len(r) < 3 {
		fatalf("operand %s polygon %d %s ring: need at least 3 points, got %d",
			operand, polygon, ring, len(r))
	}
	for _, p := range r {
		if !isFinite(p.X) || !isFinite(p.Y) {
			fatalf("operand %s polygon %d %s ring: non-finite coordinate (%v, %v)",
				operand, polygon, ring, p.X, p.Y)
		}
	}
	coincident := true
	for _, p := range r[1:] {
		if !k.PointsClose(r[0], p) {
			coincident = false
			break
		}
	}
	if coincident {
		fatalf("operand %s polygon %d %s ring: all %d points coincide within tolerance %v",
			operand, polygon, ring, len(r), k.Tolerance)
	}
}

func holeName(i int) string {
	return fmt.Sprintf("hole #%d", i)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
