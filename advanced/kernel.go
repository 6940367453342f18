package advanced

import "math"

// The geometric kernel. Every numeric predicate in the pipeline goes through
// a Kernel value so that a single tolerance governs coordinate equality,
// collinearity and boundary membership. Downstream stages never re-derive
// comparisons; doing so with a second epsilon is how engines end up with an
// arrangement that disagrees with its own classifier.
type Kernel struct {
	Tolerance float64
}

func NewKernel(tolerance float64) Kernel {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return Kernel{Tolerance: tolerance}
}

// Equal compares two scalars under the kernel tolerance.
func (k Kernel) Equal(a, b float64) bool {
	return math.Abs(a-b) <= k.Tolerance
}

// PointsClose reports whether two points merge under the kernel tolerance.
// Chebyshev distance, so the merge region is a square: cheaper than the
// euclidean test and indistinguishable at these magnitudes.
func (k Kernel) PointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) <= k.Tolerance && math.Abs(a.Y-b.Y) <= k.Tolerance
}

// Orientation of the triple (p, q, r).
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "collinear"
}

// Orientation returns the turn direction of the path p -> q -> r. The cross
// product magnitude scales with the product of the arm lengths, so the zero
// band is widened accordingly; a fixed band would misjudge long nearly
// collinear edges.
func (k Kernel) Orientation(p, q, r Point) Orientation {
	cross := (q.X-p.X)*(r.Y-p.Y) - (r.X-p.X)*(q.Y-p.Y)
	scale := math.Hypot(q.X-p.X, q.Y-p.Y) * math.Hypot(r.X-p.X, r.Y-p.Y)
	if math.Abs(cross) <= k.Tolerance*fmax(1, scale) {
		return Collinear
	}
	if cross > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// OnSegment reports whether p lies on the segment a-b, endpoints included:
// perpendicular distance to the supporting line within tolerance, and the
// projection parameter inside the segment. The perpendicular form keeps the
// test equally sensitive along and across the segment; a triangle-inequality
// test loses cross-segment sensitivity quadratically and will claim points
// that are thousands of tolerances off the line.
func (k Kernel) OnSegment(p, a, b Point) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length <= k.Tolerance {
		return k.PointsClose(p, a)
	}
	perp := math.Abs((p.X-a.X)*dy-(p.Y-a.Y)*dx) / length
	if perp > k.Tolerance {
		return false
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (length * length)
	slack := k.Tolerance / length
	return t >= -slack && t <= 1+slack
}

// IntersectionKind discriminates the result of SegmentIntersection.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	OverlapIntersection
)

// Intersection is the outcome of intersecting two segments. A point
// intersection fills At; a collinear overlap fills Overlap with the shared
// sub-segment's endpoints.
type Intersection struct {
	Kind    IntersectionKind
	At      Point
	Overlap [2]Point
}

// SegmentIntersection intersects segments a1-a2 and b1-b2. Collinear
// segments sharing more than a point report the overlap sub-segment
// explicitly; adjacent operand edges overlap all the time, and treating the
// shared stretch as two point hits would leave the splitter with crossing
// fragments it believes are disjoint.
func (k Kernel) SegmentIntersection(a1, a2, b1, b2 Point) Intersection {
	d1 := k.Orientation(a1, a2, b1)
	d2 := k.Orientation(a1, a2, b2)

	if d1 == Collinear && d2 == Collinear {
		return k.collinearOverlap(a1, a2, b1, b2)
	}

	det := (a2.X-a1.X)*(b2.Y-b1.Y) - (b2.X-b1.X)*(a2.Y-a1.Y)
	if det == 0 {
		// Parallel but not collinear.
		return Intersection{}
	}

	t := ((b1.X-a1.X)*(b2.Y-b1.Y) - (b1.Y-a1.Y)*(b2.X-b1.X)) / det
	u := ((b1.X-a1.X)*(a2.Y-a1.Y) - (b1.Y-a1.Y)*(a2.X-a1.X)) / det

	// Parameter slack lets endpoint touches (T-intersections) register even
	// when rounding pushes them a hair outside [0, 1].
	slackT := k.paramSlack(a1, a2)
	slackU := k.paramSlack(b1, b2)
	if t < -slackT || t > 1+slackT || u < -slackU || u > 1+slackU {
		return Intersection{}
	}

	t = clampUnit(t)
	return Intersection{
		Kind: PointIntersection,
		At: Point{
			X: a1.X + t*(a2.X-a1.X),
			Y: a1.Y + t*(a2.Y-a1.Y),
		},
	}
}

// collinearOverlap handles the all-collinear case by projecting both
// segments onto their dominant axis and intersecting the intervals.
func (k Kernel) collinearOverlap(a1, a2, b1, b2 Point) Intersection {
	projectOnX := math.Abs(a2.X-a1.X) > math.Abs(a2.Y-a1.Y)
	project := func(p Point) float64 {
		if projectOnX {
			return p.X
		}
		return p.Y
	}

	aLo, aHi := fmin(project(a1), project(a2)), fmax(project(a1), project(a2))
	bLo, bHi := fmin(project(b1), project(b2)), fmax(project(b1), project(b2))

	first := fmax(aLo, bLo)
	second := fmin(aHi, bHi)
	if second < first-k.Tolerance {
		return Intersection{}
	}

	unproject := func(scalar float64) Point {
		span := project(a2) - project(a1)
		if span == 0 {
			return a1
		}
		u := clampUnit((scalar - project(a1)) / span)
		return Point{
			X: a1.X + u*(a2.X-a1.X),
			Y: a1.Y + u*(a2.Y-a1.Y),
		}
	}

	p := unproject(first)
	q := unproject(second)
	if k.PointsClose(p, q) {
		return Intersection{Kind: PointIntersection, At: p}
	}
	return Intersection{Kind: OverlapIntersection, Overlap: [2]Point{p, q}}
}

// Location discriminates the result of PointInRing.
type Location int

const (
	Outside Location = iota
	Inside
	OnBoundary
)

func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on-boundary"
	}
	return "outside"
}

// PointInRing locates p relative to the ring by crossing count. A point
// within tolerance of any edge is on the boundary, never inside; the ray
// test below can answer either way for such points depending on rounding, so
// the boundary check must come first.
func (k Kernel) PointInRing(p Point, ring Ring) Location {
	for i, v := range ring {
		w := ring[CircularIndex(i+1, len(ring))]
		if k.OnSegment(p, v, w) {
			return OnBoundary
		}
	}

	crossings := 0
	for i, v := range ring {
		w := ring[CircularIndex(i+1, len(ring))]
		if (v.Y > p.Y) == (w.Y > p.Y) {
			continue
		}
		// X coordinate where the edge crosses the horizontal through p.
		x := v.X + (p.Y-v.Y)/(w.Y-v.Y)*(w.X-v.X)
		if x > p.X {
			crossings++
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}

// RingSetContains applies the even-odd rule across a whole set of rings:
// inside an odd number of rings means inside the region, holes included.
// Boundary hits do not count as crossings; callers sample representative
// points that sit strictly off every edge.
func (k Kernel) RingSetContains(rings []Ring, p Point) bool {
	crossings := 0
	for _, ring := range rings {
		if k.PointInRing(p, ring) == Inside {
			crossings++
		}
	}
	return crossings%2 == 1
}

// paramSlack converts the coordinate tolerance into parameter space for a
// segment of the given endpoints.
func (k Kernel) paramSlack(a, b Point) float64 {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length <= k.Tolerance {
		return 1
	}
	return k.Tolerance / length
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
