package advanced

import "math"

// The face classifier. Each face gets a containment label (insideA, insideB)
// from a single representative point sampled strictly inside the region on
// the cycle's left. Labels come from testing that point against the original
// operand rings, not from counting edge tags: when the two operands run
// along the same boundary, tag bookkeeping on shared edges is ambiguous, but
// a point strictly off the boundary is not.

// classifyFaces labels every traced face of the arrangement against the two
// operands.
func classifyFaces(arr *arrangement, a, b MultiPolygon) {
	ringsA := a.Rings()
	ringsB := b.Rings()

	for i := range arr.faces {
		f := &arr.faces[i]
		p := arr.representativePoint(f)
		f.insideA = arr.k.RingSetContains(ringsA, p)
		f.insideB = arr.k.RingSetContains(ringsB, p)
	}
}

// representativePoint picks a point just inside the face: the midpoint of
// the cycle's longest half-edge, offset perpendicularly to the left. The
// longest edge gives the offset the most room before it could cross the
// opposite side of a thin region; the offset itself stays a small fraction
// of the edge length but always clears the merge tolerance.
func (arr *arrangement) representativePoint(f *face) Point {
	longest := f.repEdge
	best := -1.0
	cur := f.repEdge
	for {
		he := arr.halves[cur]
		length := edgeLength(arr.verts[he.from].pt, arr.verts[he.to].pt)
		if length > best {
			best = length
			longest = cur
		}
		cur = he.next
		if cur == f.repEdge {
			break
		}
	}

	he := arr.halves[longest]
	from := arr.verts[he.from].pt
	to := arr.verts[he.to].pt
	mid := Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}

	length := edgeLength(from, to)
	if length == 0 {
		return mid
	}
	offset := fmax(arr.k.Tolerance*8, length*1e-9)
	// Left normal of the edge direction.
	nx := -(to.Y - from.Y) / length
	ny := (to.X - from.X) / length
	return Point{X: mid.X + nx*offset, Y: mid.Y + ny*offset}
}

// sliverArea is the area below which an output ring is discarded as noise.
// Scales with the square of the tolerance would be too strict for practical
// inputs; a linear factor over the tolerance matches what the merge step can
// actually distinguish.
func sliverArea(k Kernel) float64 {
	return fmax(k.Tolerance*16, math.Nextafter(0, 1))
}
