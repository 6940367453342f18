package advanced

// Points are plain values. Unlike pointer-identity schemes, every comparison
// in this package is tolerance based, so there is nothing to gain from
// sharing point storage, and values keep the arrangement arena free of
// reference cycles.
type Point struct {
	X float64
	Y float64
}

// A Ring is a closed loop of points. The edge from the last point back to the
// first is implicit. Raw input rings may self-intersect and may wind either
// way; the engine resolves both.
type Ring []Point

// A Polygon is one outer ring plus any number of hole rings. After assembly
// the outer ring winds counterclockwise and holes wind clockwise, whatever
// the input order was.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// A MultiPolygon is the operand and result type of every boolean operation:
// a set of polygons whose interiors are disjoint or touch only at boundaries.
type MultiPolygon []Polygon

// Op selects which boolean operation Clip performs.
type Op int

const (
	OpUnion Op = iota
	OpIntersection
	OpDifference
	OpSymmetricDifference
)

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	case OpSymmetricDifference:
		return "xor"
	}
	return "unknown"
}

// The selection table. Rows are operations, columns are face labels packed by
// labelIndex. A face survives the operation iff its entry is true. This is
// the single source of truth for what each operation means; everything else
// in the pipeline is operation-agnostic.
var selection = [...][4]bool{
	//                    (F,F)  (F,T)  (T,F)  (T,T)
	OpUnion:               {false, true, true, true},
	OpIntersection:        {false, false, false, true},
	OpDifference:          {false, false, true, false},
	OpSymmetricDifference: {false, true, true, false},
}

func labelIndex(insideA, insideB bool) int {
	i := 0
	if insideA {
		i |= 2
	}
	if insideB {
		i |= 1
	}
	return i
}

// Keeps reports whether a face labeled (insideA, insideB) is part of the
// output of op.
func (op Op) Keeps(insideA, insideB bool) bool {
	return selection[op][labelIndex(insideA, insideB)]
}

// Signed area by the shoelace formula. Positive for counterclockwise rings.
func (r Ring) SignedArea() float64 {
	var sum float64
	for i, p := range r {
		q := r[CircularIndex(i+1, len(r))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (r Ring) Area() float64 {
	area := r.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (r Ring) IsClockwise() bool {
	return r.SignedArea() < 0
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		reversed = append(reversed, r[i])
	}
	return reversed
}

// Rings returns the outer ring followed by the holes.
func (poly Polygon) Rings() []Ring {
	rings := make([]Ring, 0, len(poly.Holes)+1)
	rings = append(rings, poly.Outer)
	rings = append(rings, poly.Holes...)
	return rings
}

// Rings returns every ring of every polygon, outers and holes alike.
func (mp MultiPolygon) Rings() []Ring {
	var rings []Ring
	for _, poly := range mp {
		rings = append(rings, poly.Rings()...)
	}
	return rings
}

// Area is the total area covered: outer areas minus hole areas.
func (mp MultiPolygon) Area() float64 {
	var area float64
	for _, poly := range mp {
		area += poly.Outer.Area()
		for _, hole := range poly.Holes {
			area -= hole.Area()
		}
	}
	return area
}

type boundingBox struct {
	min, max Point
}

func emptyBoundingBox() boundingBox {
	return boundingBox{
		min: Point{inf(1), inf(1)},
		max: Point{inf(-1), inf(-1)},
	}
}

func (bb *boundingBox) extend(p Point) {
	bb.min.X = fmin(bb.min.X, p.X)
	bb.min.Y = fmin(bb.min.Y, p.Y)
	bb.max.X = fmax(bb.max.X, p.X)
	bb.max.Y = fmax(bb.max.Y, p.Y)
}

func (bb boundingBox) overlaps(other boundingBox, slack float64) bool {
	return bb.min.X <= other.max.X+slack && other.min.X <= bb.max.X+slack &&
		bb.min.Y <= other.max.Y+slack && other.min.Y <= bb.max.Y+slack
}

func (mp MultiPolygon) boundingBox() boundingBox {
	bb := emptyBoundingBox()
	for _, ring := range mp.Rings() {
		for _, p := range ring {
			bb.extend(p)
		}
	}
	return bb
}
