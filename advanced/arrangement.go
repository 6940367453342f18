package advanced

import (
	"fmt"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/polybool/dbg"
)

// The arrangement: a planar subdivision built from the split segments.
// Vertices, half-edges and faces live in index-addressed arenas; twin, next
// and face references are plain ints, which keeps the cyclic structure free
// of pointer cycles and makes every lookup O(1).
//
// Every kept segment becomes one twin pair of directed half-edges. The face
// of a half-edge is the region immediately to its left; tracing next-links
// from any half-edge walks the full boundary cycle of that region. Cycles
// with positive signed area bound a face from inside (counterclockwise);
// negative cycles are seen from the containing region, including the
// unbounded one.

type arrVertex struct {
	pt  Point
	out []int // outgoing half-edge ids, sorted counterclockwise after build
}

type halfEdge struct {
	from, to int
	twin     int
	next     int
	face     int
	tags     operandTag
	alive    bool
}

type face struct {
	repEdge int     // a half-edge on the cycle; used for sampling
	area    float64 // signed area of the cycle
	insideA bool
	insideB bool
}

type gridKey struct {
	x, y int64
}

type arrangement struct {
	k      Kernel
	verts  []arrVertex
	halves []halfEdge
	faces  []face

	grid  map[gridKey][]int
	cell  float64
	edges map[[2]int]int // unordered vertex pair -> first half-edge of pair
}

func newArrangement(k Kernel) *arrangement {
	return &arrangement{
		k:     k,
		grid:  make(map[gridKey][]int),
		cell:  fmax(k.Tolerance*2, 1e-12),
		edges: make(map[[2]int]int),
	}
}

// buildArrangement constructs the planar subdivision from non-crossing
// segments: snap vertices, merge coincident segments, prune dangling edges,
// then link and trace faces.
func buildArrangement(k Kernel, segs []taggedSegment) *arrangement {
	arr := newArrangement(k)
	for _, seg := range segs {
		arr.addSegment(seg)
	}
	arr.prune()
	arr.sortIncident()
	arr.linkNext()
	arr.traceFaces()
	return arr
}

// vertexID returns the arena index for the point, merging points that fall
// within tolerance of an existing vertex. The lookup hashes points onto a
// grid of tolerance-sized cells and scans the 3x3 neighborhood, so two
// nearly identical coordinates always land on the same vertex no matter
// which cell boundary separates them.
func (arr *arrangement) vertexID(p Point) int {
	kx := int64(math.Floor(p.X / arr.cell))
	ky := int64(math.Floor(p.Y / arr.cell))
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, id := range arr.grid[gridKey{kx + dx, ky + dy}] {
				if arr.k.PointsClose(arr.verts[id].pt, p) {
					return id
				}
			}
		}
	}

	id := len(arr.verts)
	arr.verts = append(arr.verts, arrVertex{pt: p})
	key := gridKey{kx, ky}
	arr.grid[key] = append(arr.grid[key], id)
	return id
}

func (arr *arrangement) addSegment(seg taggedSegment) {
	u := arr.vertexID(seg.from)
	v := arr.vertexID(seg.to)
	if u == v {
		// Snapping collapsed the segment; nothing to add.
		return
	}

	pair := [2]int{u, v}
	if v < u {
		pair = [2]int{v, u}
	}
	if h, ok := arr.edges[pair]; ok {
		// Coincident with an existing segment: merge operand tags. This is
		// where a shared A/B edge becomes a single both-tagged half-edge pair.
		arr.halves[h].tags |= seg.tags
		arr.halves[arr.halves[h].twin].tags |= seg.tags
		return
	}

	h := len(arr.halves)
	arr.halves = append(arr.halves,
		halfEdge{from: u, to: v, twin: h + 1, next: -1, face: -1, tags: seg.tags, alive: true},
		halfEdge{from: v, to: u, twin: h, next: -1, face: -1, tags: seg.tags, alive: true},
	)
	arr.edges[pair] = h
	arr.verts[u].out = append(arr.verts[u].out, h)
	arr.verts[v].out = append(arr.verts[v].out, h+1)
}

// prune removes vertices of degree zero or one, cascading. A dangling edge
// cannot bound a region, and leaving it in would derail face tracing.
// Degenerate input (zero-area rings collapse to doubled paths during
// coincident-segment merging) is the usual source.
func (arr *arrangement) prune() {
	degree := make([]int, len(arr.verts))
	for i := range arr.verts {
		degree[i] = len(arr.verts[i].out)
	}

	var queue []int
	for i, d := range degree {
		if d <= 1 {
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, h := range arr.verts[v].out {
			if !arr.halves[h].alive {
				continue
			}
			t := arr.halves[h].twin
			arr.halves[h].alive = false
			arr.halves[t].alive = false
			degree[v]--
			other := arr.halves[h].to
			degree[other]--
			if degree[other] == 1 {
				queue = append(queue, other)
			}
		}
	}

	// Drop dead edges from the incidence lists.
	for i := range arr.verts {
		live := arr.verts[i].out[:0]
		for _, h := range arr.verts[i].out {
			if arr.halves[h].alive {
				live = append(live, h)
			}
		}
		arr.verts[i].out = live
	}
}

// sortIncident orders every vertex's outgoing half-edges counterclockwise by
// angle. Face traversal depends on this order being globally consistent.
func (arr *arrangement) sortIncident() {
	for i := range arr.verts {
		v := &arr.verts[i]
		sort.Slice(v.out, func(a, b int) bool {
			return arr.edgeAngle(v.out[a]) < arr.edgeAngle(v.out[b])
		})
	}
}

func (arr *arrangement) edgeAngle(h int) float64 {
	from := arr.verts[arr.halves[h].from].pt
	to := arr.verts[arr.halves[h].to].pt
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// linkNext assigns each half-edge its successor in the boundary cycle of the
// face on its left: arriving at a vertex along h, the next half-edge is the
// one immediately clockwise of h's twin in the counterclockwise incidence
// order. With this rule, bounded faces trace counterclockwise.
func (arr *arrangement) linkNext() {
	for h := range arr.halves {
		if !arr.halves[h].alive {
			continue
		}
		v := arr.halves[h].to
		out := arr.verts[v].out
		twin := arr.halves[h].twin

		pos := -1
		for i, candidate := range out {
			if candidate == twin {
				pos = i
				break
			}
		}
		if pos < 0 {
			fatalf("arrangement: twin of half-edge %d missing from vertex %d incidence list", h, v)
		}
		arr.halves[h].next = out[CircularIndex(pos-1, len(out))]
	}
}

// traceFaces walks next-links to discover every boundary cycle, creating one
// face per cycle and stamping it on the cycle's half-edges. Each live
// half-edge ends up in exactly one face.
func (arr *arrangement) traceFaces() {
	limit := len(arr.halves) + 1
	for h := range arr.halves {
		if !arr.halves[h].alive || arr.halves[h].face >= 0 {
			continue
		}

		id := len(arr.faces)
		var area float64
		cur := h
		for steps := 0; ; steps++ {
			if steps > limit {
				fatalf("arrangement: face trace from half-edge %d did not close", h)
			}
			arr.halves[cur].face = id
			p := arr.verts[arr.halves[cur].from].pt
			q := arr.verts[arr.halves[cur].to].pt
			area += p.X*q.Y - q.X*p.Y
			cur = arr.halves[cur].next
			if cur == h {
				break
			}
		}
		arr.faces = append(arr.faces, face{repEdge: h, area: area / 2})
	}
}

func (arr *arrangement) leftFace(h int) *face {
	return &arr.faces[arr.halves[h].face]
}

func (arr *arrangement) rightFace(h int) *face {
	return &arr.faces[arr.halves[arr.halves[h].twin].face]
}

// cycleRing collects the vertex points of the cycle containing h.
func (arr *arrangement) cycleRing(h int) Ring {
	var ring Ring
	cur := h
	for {
		ring = append(ring, arr.verts[arr.halves[cur].from].pt)
		cur = arr.halves[cur].next
		if cur == h {
			return ring
		}
	}
}

func (f *face) String() string {
	name := dbg.Name(f)
	switch {
	case f.insideA && f.insideB:
		name = aurora.Magenta(name).String()
	case f.insideA:
		name = aurora.Cyan(name).String()
	case f.insideB:
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("Face %s <A: %v, B: %v, area: %g>", name, f.insideA, f.insideB, f.area)
}

func (arr *arrangement) halfEdgeString(h int) string {
	he := arr.halves[h]
	return fmt.Sprintf("HalfEdge %s %v→%v [%s]",
		dbg.Name(&arr.halves[h]), arr.verts[he.from].pt, arr.verts[he.to].pt, he.tags)
}
