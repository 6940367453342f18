package advanced

// The boolean combinator: the engine's entry point. The public package wraps
// Clip with panic recovery; here invalid input and internal invariant
// violations fatalf.
//
// The pipeline per operation: validate, normalize, split all edges at mutual
// intersections, build the arrangement, classify faces, emit the boundary
// half-edges the selection table calls for, and assemble the emitted rings
// into polygons. Nothing survives between calls; concurrent Clip calls on
// different operands share no state.

// Clip computes the boolean combination of two operands under the given
// coordinate tolerance. Panics with a ClipError on malformed input.
func Clip(a, b MultiPolygon, op Op, tolerance float64) MultiPolygon {
	if op < OpUnion || op > OpSymmetricDifference {
		fatalf("unknown operation %d", int(op))
	}
	k := NewKernel(tolerance)
	validateOperand(k, "A", a)
	validateOperand(k, "B", b)

	a = normalizeOperand(k, a)
	b = normalizeOperand(k, b)

	// Disjoint operands never interact; skip the arrangement entirely.
	if !a.boundingBox().overlaps(b.boundingBox(), k.Tolerance) {
		return disjointResult(a, b, op)
	}

	segs := splitSegments(k, a, b)
	arr := buildArrangement(k, segs)
	classifyFaces(arr, a, b)
	return assemble(k, emitBoundaries(arr, op))
}

// disjointResult handles operands whose bounding boxes don't meet: union and
// xor concatenate, intersection is empty, difference keeps A.
func disjointResult(a, b MultiPolygon, op Op) MultiPolygon {
	switch op {
	case OpIntersection:
		return nil
	case OpDifference:
		return normalizeOrientation(a)
	case OpUnion, OpSymmetricDifference:
		out := make(MultiPolygon, 0, len(a)+len(b))
		out = append(out, normalizeOrientation(a)...)
		out = append(out, normalizeOrientation(b)...)
		// Canonical output order must not depend on operand order.
		sortMultiPolygon(out)
		return out
	}
	fatalf("unknown operation %d", int(op))
	return nil
}

// normalizeOperand drops consecutive duplicate points (including an explicit
// closing point equal to the first) and discards rings that collapse below
// three points. Collapse here is a geometric degeneracy, not a caller error;
// validation has already rejected rings that were degenerate as given.
func normalizeOperand(k Kernel, mp MultiPolygon) MultiPolygon {
	out := make(MultiPolygon, 0, len(mp))
	for _, poly := range mp {
		outer := dedupRing(k, poly.Outer)
		if len(outer) < 3 {
			continue
		}
		clean := Polygon{Outer: outer}
		for _, hole := range poly.Holes {
			if hole = dedupRing(k, hole); len(hole) >= 3 {
				clean.Holes = append(clean.Holes, hole)
			}
		}
		out = append(out, clean)
	}
	return out
}

func dedupRing(k Kernel, r Ring) Ring {
	out := make(Ring, 0, len(r))
	for _, p := range r {
		if len(out) > 0 && k.PointsClose(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	// The closing edge is implicit; drop an explicit closing point.
	for len(out) > 1 && k.PointsClose(out[len(out)-1], out[0]) {
		out = out[:len(out)-1]
	}
	return out
}

// emitBoundaries selects the half-edges that separate a kept face from a
// dropped face and walks them into closed rings. An edge between two kept
// faces (or two dropped faces) is not a boundary of the result, which is
// what implicitly merges adjacent selected faces.
func emitBoundaries(arr *arrangement, op Op) []Ring {
	emit := make([]bool, len(arr.halves))
	for h := range arr.halves {
		if !arr.halves[h].alive {
			continue
		}
		left := arr.leftFace(h)
		right := arr.rightFace(h)
		emit[h] = op.Keeps(left.insideA, left.insideB) && !op.Keeps(right.insideA, right.insideB)
	}

	used := make([]bool, len(arr.halves))
	var rings []Ring
	for h := range arr.halves {
		if !emit[h] || used[h] {
			continue
		}
		rings = append(rings, walkBoundary(arr, emit, used, h))
	}
	return rings
}

// walkBoundary traces one output ring starting from an emitted half-edge.
// After each edge it rotates around the head vertex (candidate =
// next(twin(candidate))) until it finds the next emitted edge; the rotation
// skips interior edges shared by two kept faces while keeping the result
// region on the left, so outer boundaries come out counterclockwise and
// holes clockwise.
func walkBoundary(arr *arrangement, emit, used []bool, start int) Ring {
	var ring Ring
	cur := start
	for steps := 0; ; steps++ {
		if steps > len(arr.halves) {
			fatalf("boundary walk from %s did not close", arr.halfEdgeString(start))
		}
		used[cur] = true
		ring = append(ring, arr.verts[arr.halves[cur].from].pt)

		next := arr.halves[cur].next
		for guard := 0; !emit[next]; guard++ {
			if guard > len(arr.halves) {
				fatalf("no emitted continuation after %s", arr.halfEdgeString(cur))
			}
			next = arr.halves[arr.halves[next].twin].next
		}
		cur = next
		if cur == start {
			return ring
		}
	}
}
