// Boolean operations over planar polygons for Go.
//
// This package computes the union, intersection, difference and symmetric
// difference of polygon sets. Operands may be non-convex, may be disjoint,
// may contain holes, and may even self-intersect or share edges; the engine
// resolves all of that into clean output polygons with counterclockwise
// outers and clockwise holes.
package polybool

import "github.com/osuushi/polybool/advanced"

type Point = advanced.Point
type Ring = advanced.Ring
type Polygon = advanced.Polygon
type MultiPolygon = advanced.MultiPolygon
type Op = advanced.Op

const (
	OpUnion               = advanced.OpUnion
	OpIntersection        = advanced.OpIntersection
	OpDifference          = advanced.OpDifference
	OpSymmetricDifference = advanced.OpSymmetricDifference
)

// DefaultTolerance is the coordinate epsilon used by the convenience
// entry points. See CombineWithTolerance to override it.
const DefaultTolerance = advanced.DefaultTolerance

// Combine computes the boolean combination of two operands. It never fails
// on geometric degeneracy (self-intersections, shared edges, touching
// boundaries); the only errors are malformed input: a ring with fewer than
// three points, all points coincident, or non-finite coordinates.
func Combine(a, b MultiPolygon, op Op) (MultiPolygon, error) {
	return CombineWithTolerance(a, b, op, DefaultTolerance)
}

// CombineWithTolerance is Combine with an explicit coordinate epsilon. The
// tolerance governs every comparison in the engine: point merging,
// collinearity, boundary membership and sliver suppression.
func CombineWithTolerance(a, b MultiPolygon, op Op, tolerance float64) (result MultiPolygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleClipPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Clip(a, b, op, tolerance), nil
}

// Union returns the region covered by either operand.
func Union(a, b MultiPolygon) (MultiPolygon, error) {
	return Combine(a, b, OpUnion)
}

// Intersection returns the region covered by both operands.
func Intersection(a, b MultiPolygon) (MultiPolygon, error) {
	return Combine(a, b, OpIntersection)
}

// Difference returns the region covered by a but not b.
func Difference(a, b MultiPolygon) (MultiPolygon, error) {
	return Combine(a, b, OpDifference)
}

// SymmetricDifference returns the region covered by exactly one operand.
func SymmetricDifference(a, b MultiPolygon) (MultiPolygon, error) {
	return Combine(a, b, OpSymmetricDifference)
}
