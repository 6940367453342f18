package advanced

import (
	"math"
	"sort"
)

// The segment splitter. Takes every edge of both operands and cuts each one
// at every point where another edge crosses, touches or overlaps it, so that
// the surviving fragments form a set of segments that never cross. Fragments
// of a collinear shared stretch come out as coincident duplicates here; the
// arrangement merges them and combines their operand tags.
//
// Every pairwise intersection point of the original edges becomes a cut on
// both participants, so a single splitting pass reaches a fixed point:
// fragments are sub-intervals of originals and cannot cross each other at
// any point that was not already a cut.

// operandTag records which operand(s) an edge fragment came from.
type operandTag uint8

const (
	tagA operandTag = 1 << iota
	tagB
)

func (t operandTag) String() string {
	switch t {
	case tagA:
		return "A"
	case tagB:
		return "B"
	case tagA | tagB:
		return "A+B"
	}
	return "-"
}

type taggedSegment struct {
	from, to Point
	tags     operandTag
}

// splitEdge is a segment plus the cut parameters accumulated during the
// sweep, in the segment's own parameter space.
type splitEdge struct {
	seg        taggedSegment
	minX, maxX float64
	minY, maxY float64
	cuts       []float64
}

func newSplitEdge(seg taggedSegment) splitEdge {
	return splitEdge{
		seg:  seg,
		minX: fmin(seg.from.X, seg.to.X),
		maxX: fmax(seg.from.X, seg.to.X),
		minY: fmin(seg.from.Y, seg.to.Y),
		maxY: fmax(seg.from.Y, seg.to.Y),
	}
}

// operandEdges flattens the rings of a multipolygon into tagged edges,
// dropping zero-length edges (consecutive duplicate points).
func operandEdges(k Kernel, mp MultiPolygon, tag operandTag) []taggedSegment {
	var segs []taggedSegment
	for _, ring := range mp.Rings() {
		for i, p := range ring {
			q := ring[CircularIndex(i+1, len(ring))]
			if k.PointsClose(p, q) {
				continue
			}
			segs = append(segs, taggedSegment{from: p, to: q, tags: tag})
		}
	}
	return segs
}

// splitSegments cuts every edge of both operands at every mutual
// intersection. The sweep runs over edges in increasing min-x, keeping an
// active set of edges whose x-interval still overlaps the sweep position;
// each incoming edge is tested against the active edges whose boxes overlap
// its own. Malformed input never fails here: self-intersecting and
// overlapping rings just contribute ordinary intersections.
func splitSegments(k Kernel, a, b MultiPolygon) []taggedSegment {
	edges := operandEdges(k, a, tagA)
	edges = append(edges, operandEdges(k, b, tagB)...)

	split := make([]splitEdge, len(edges))
	for i, seg := range edges {
		split[i] = newSplitEdge(seg)
	}

	order := make([]int, len(split))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ei, ej := &split[order[i]], &split[order[j]]
		if ei.minX != ej.minX {
			return ei.minX < ej.minX
		}
		return ei.minY < ej.minY
	})

	// Active edges, pruned once the sweep passes their max-x.
	var active []int
	for _, idx := range order {
		edge := &split[idx]

		kept := active[:0]
		for _, other := range active {
			if split[other].maxX >= edge.minX-k.Tolerance {
				kept = append(kept, other)
			}
		}
		active = append(kept, idx)

		for _, other := range active[:len(kept)] {
			cutPair(k, edge, &split[other])
		}
	}

	var out []taggedSegment
	for i := range split {
		out = append(out, split[i].fragments(k)...)
	}
	return out
}

// cutPair intersects two edges and records cut parameters on both.
func cutPair(k Kernel, e, f *splitEdge) {
	if e.maxY < f.minY-k.Tolerance || f.maxY < e.minY-k.Tolerance {
		return
	}

	hit := k.SegmentIntersection(e.seg.from, e.seg.to, f.seg.from, f.seg.to)
	switch hit.Kind {
	case PointIntersection:
		e.cut(k, hit.At)
		f.cut(k, hit.At)
	case OverlapIntersection:
		for _, p := range hit.Overlap {
			e.cut(k, p)
			f.cut(k, p)
		}
	}
}

// cut records the parameter of p along the edge, ignoring cuts that land on
// an endpoint (a T-intersection splits only the edge whose interior is hit).
func (e *splitEdge) cut(k Kernel, p Point) {
	dx := e.seg.to.X - e.seg.from.X
	dy := e.seg.to.Y - e.seg.from.Y
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return
	}
	t := ((p.X-e.seg.from.X)*dx + (p.Y-e.seg.from.Y)*dy) / length2

	slack := k.paramSlack(e.seg.from, e.seg.to)
	if t <= slack || t >= 1-slack {
		return
	}
	e.cuts = append(e.cuts, t)
}

// fragments subdivides the edge at its sorted cut parameters, merging cuts
// that fall within tolerance of one another so nearly identical intersection
// points produce a single split vertex.
func (e *splitEdge) fragments(k Kernel) []taggedSegment {
	if len(e.cuts) == 0 {
		return []taggedSegment{e.seg}
	}

	sort.Float64s(e.cuts)
	slack := k.paramSlack(e.seg.from, e.seg.to)

	points := []Point{e.seg.from}
	last := 0.0
	for _, t := range e.cuts {
		if t-last <= slack {
			continue
		}
		last = t
		points = append(points, e.at(t))
	}
	points = append(points, e.seg.to)

	frags := make([]taggedSegment, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		if k.PointsClose(points[i], points[i+1]) {
			continue
		}
		frags = append(frags, taggedSegment{from: points[i], to: points[i+1], tags: e.seg.tags})
	}
	return frags
}

func (e *splitEdge) at(t float64) Point {
	return Point{
		X: e.seg.from.X + t*(e.seg.to.X-e.seg.from.X),
		Y: e.seg.from.Y + t*(e.seg.to.Y-e.seg.from.Y),
	}
}

// edgeLength is only used for picking representative edges; exact values
// don't matter, relative magnitudes do.
func edgeLength(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
