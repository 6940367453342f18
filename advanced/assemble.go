package advanced

import "sort"

// The ring assembler. Takes the raw rings emitted by the boundary walk,
// drops degenerate ones, determines which rings are holes of which outers by
// containment depth, and produces polygons with normalized winding: outers
// counterclockwise, holes clockwise. Output order and ring start points are
// canonicalized so that equal regions compare equal.

func assemble(k Kernel, rings []Ring) MultiPolygon {
	minArea := sliverArea(k)
	kept := rings[:0]
	for _, r := range rings {
		r = simplifyRing(k, dedupRing(k, r))
		if len(r) < 3 || r.Area() <= minArea {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil
	}

	// Containment depth of each ring, and for odd-depth rings the smallest
	// enclosing ring, which is the hole's owner.
	depth := make([]int, len(kept))
	parent := make([]int, len(kept))
	for i := range parent {
		parent[i] = -1
	}
	for i, r := range kept {
		for j, s := range kept {
			if i == j || !ringContainsRing(k, s, r) {
				continue
			}
			depth[i]++
			if parent[i] < 0 || s.Area() < kept[parent[i]].Area() {
				parent[i] = j
			}
		}
	}

	polyIndex := make(map[int]int, len(kept))
	var out MultiPolygon
	for i, r := range kept {
		if depth[i]%2 != 0 {
			continue
		}
		if r.IsClockwise() {
			r = r.Reverse()
		}
		polyIndex[i] = len(out)
		out = append(out, Polygon{Outer: canonicalRing(r)})
	}
	for i, r := range kept {
		if depth[i]%2 != 1 {
			continue
		}
		if parent[i] < 0 {
			fatalf("assembler: hole ring with depth %d has no enclosing ring", depth[i])
		}
		if !r.IsClockwise() {
			r = r.Reverse()
		}
		// The smallest enclosing ring of an odd-depth ring has even depth, so
		// it is always registered as an outer.
		owner := polyIndex[parent[i]]
		out[owner].Holes = append(out[owner].Holes, canonicalRing(r))
	}

	sortMultiPolygon(out)
	return out
}

// simplifyRing removes vertices that are collinear with their neighbors.
// The boundary walk leaves such vertices wherever an edge was split by the
// other operand but both fragments ended up in the result.
func simplifyRing(k Kernel, r Ring) Ring {
	out := make(Ring, 0, len(r))
	for i, p := range r {
		prev := r[CircularIndex(i-1, len(r))]
		next := r[CircularIndex(i+1, len(r))]
		if k.Orientation(prev, p, next) == Collinear {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ringContainsRing reports whether inner lies inside outer. Rings emitted
// from one arrangement may share vertices, so the test probes inner's
// vertices until one is strictly off outer's boundary; if every vertex is
// shared, it falls back to an edge midpoint.
func ringContainsRing(k Kernel, outer, inner Ring) bool {
	for _, p := range inner {
		switch k.PointInRing(p, outer) {
		case Inside:
			return true
		case Outside:
			return false
		}
	}
	for i, p := range inner {
		q := inner[CircularIndex(i+1, len(inner))]
		mid := Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
		switch k.PointInRing(mid, outer) {
		case Inside:
			return true
		case Outside:
			return false
		}
	}
	return false
}

// canonicalRing rotates the ring so the lexicographically smallest point
// comes first. Winding is preserved.
func canonicalRing(r Ring) Ring {
	best := 0
	for i, p := range r {
		if pointLess(p, r[best]) {
			best = i
		}
	}
	out := make(Ring, 0, len(r))
	out = append(out, r[best:]...)
	out = append(out, r[:best]...)
	return out
}

func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func sortMultiPolygon(mp MultiPolygon) {
	for i := range mp {
		sort.Slice(mp[i].Holes, func(a, b int) bool {
			return pointLess(mp[i].Holes[a][0], mp[i].Holes[b][0])
		})
	}
	sort.Slice(mp, func(a, b int) bool {
		return pointLess(mp[a].Outer[0], mp[b].Outer[0])
	})
}

// normalizeOrientation fixes winding and canonical form without touching
// geometry; used on the disjoint-operands shortcut path where the
// arrangement never runs.
func normalizeOrientation(mp MultiPolygon) MultiPolygon {
	out := make(MultiPolygon, 0, len(mp))
	for _, poly := range mp {
		outer := poly.Outer
		if outer.IsClockwise() {
			outer = outer.Reverse()
		}
		fixed := Polygon{Outer: canonicalRing(outer)}
		for _, hole := range poly.Holes {
			if !hole.IsClockwise() {
				hole = hole.Reverse()
			}
			fixed.Holes = append(fixed.Holes, canonicalRing(hole))
		}
		out = append(out, fixed)
	}
	sortMultiPolygon(out)
	return out
}
