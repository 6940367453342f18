package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultKernel() Kernel {
	return NewKernel(DefaultTolerance)
}

func TestOrientation(t *testing.T) {
	k := defaultKernel()

	tests := []struct {
		name    string
		p, q, r Point
		want    Orientation
	}{
		{"counterclockwise turn", Point{0, 0}, Point{1, 0}, Point{1, 1}, CounterClockwise},
		{"clockwise turn", Point{0, 0}, Point{1, 0}, Point{1, -1}, Clockwise},
		{"collinear ascending", Point{0, 0}, Point{2, 2}, Point{4, 4}, Collinear},
		{"collinear with backtrack", Point{4, 4}, Point{2, 2}, Point{0, 0}, Collinear},
		{"nearly collinear within band", Point{0, 0}, Point{1000, 0}, Point{2000, 1e-10}, Collinear},
		{"nearly collinear outside band", Point{0, 0}, Point{1, 0}, Point{2, 1e-6}, CounterClockwise},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, k.Orientation(test.p, test.q, test.r))
		})
	}
}

func TestSegmentIntersectionPoint(t *testing.T) {
	k := defaultKernel()

	t.Run("proper crossing", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0})
		require.Equal(t, PointIntersection, hit.Kind)
		assert.InDelta(t, 1, hit.At.X, DefaultTolerance)
		assert.InDelta(t, 1, hit.At.Y, DefaultTolerance)
	})

	t.Run("T-intersection at endpoint", func(t *testing.T) {
		// b's endpoint lies in the interior of a.
		hit := k.SegmentIntersection(Point{0, 0}, Point{4, 0}, Point{2, 0}, Point{2, 3})
		require.Equal(t, PointIntersection, hit.Kind)
		assert.InDelta(t, 2, hit.At.X, DefaultTolerance)
		assert.InDelta(t, 0, hit.At.Y, DefaultTolerance)
	})

	t.Run("shared endpoint", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{2, 0}, Point{2, 0}, Point{3, 5})
		require.Equal(t, PointIntersection, hit.Kind)
		assert.InDelta(t, 2, hit.At.X, DefaultTolerance)
	})

	t.Run("disjoint", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1})
		assert.Equal(t, NoIntersection, hit.Kind)
	})

	t.Run("crossing lines but disjoint segments", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{1, 0}, Point{5, -1}, Point{5, 1})
		assert.Equal(t, NoIntersection, hit.Kind)
	})
}

func TestSegmentIntersectionOverlap(t *testing.T) {
	k := defaultKernel()

	t.Run("partial overlap", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{4, 0}, Point{2, 0}, Point{6, 0})
		require.Equal(t, OverlapIntersection, hit.Kind)
		lo, hi := hit.Overlap[0], hit.Overlap[1]
		if lo.X > hi.X {
			lo, hi = hi, lo
		}
		assert.InDelta(t, 2, lo.X, DefaultTolerance)
		assert.InDelta(t, 4, hi.X, DefaultTolerance)
	})

	t.Run("containment overlap", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{0, 6}, Point{0, 2}, Point{0, 4})
		require.Equal(t, OverlapIntersection, hit.Kind)
		lo, hi := hit.Overlap[0], hit.Overlap[1]
		if lo.Y > hi.Y {
			lo, hi = hi, lo
		}
		assert.InDelta(t, 2, lo.Y, DefaultTolerance)
		assert.InDelta(t, 4, hi.Y, DefaultTolerance)
	})

	t.Run("collinear sharing a single point", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{2, 0}, Point{2, 0}, Point{4, 0})
		require.Equal(t, PointIntersection, hit.Kind)
		assert.InDelta(t, 2, hit.At.X, DefaultTolerance)
	})

	t.Run("collinear but disjoint", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0})
		assert.Equal(t, NoIntersection, hit.Kind)
	})

	t.Run("parallel but offset", func(t *testing.T) {
		hit := k.SegmentIntersection(Point{0, 0}, Point{4, 0}, Point{0, 1}, Point{4, 1})
		assert.Equal(t, NoIntersection, hit.Kind)
	})
}

func TestOnSegment(t *testing.T) {
	k := defaultKernel()
	a, b := Point{0, 0}, Point{4, 0}

	assert.True(t, k.OnSegment(Point{2, 0}, a, b))
	assert.True(t, k.OnSegment(a, a, b))
	assert.True(t, k.OnSegment(b, a, b))
	assert.True(t, k.OnSegment(Point{2, 1e-10}, a, b))
	assert.False(t, k.OnSegment(Point{2, 1e-6}, a, b))
	assert.False(t, k.OnSegment(Point{5, 0}, a, b))
	assert.False(t, k.OnSegment(Point{-1, 0}, a, b))
}

func TestPointInRing(t *testing.T) {
	k := defaultKernel()
	square := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	tests := []struct {
		name string
		p    Point
		want Location
	}{
		{"center", Point{2, 2}, Inside},
		{"outside right", Point{5, 2}, Outside},
		{"outside above", Point{2, 5}, Outside},
		{"on bottom edge", Point{2, 0}, OnBoundary},
		{"on corner", Point{4, 4}, OnBoundary},
		{"just inside an edge", Point{2, 1e-6}, Inside},
		{"just outside an edge", Point{2, -1e-6}, Outside},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, k.PointInRing(test.p, square))
		})
	}

	t.Run("concave ring", func(t *testing.T) {
		// U shape: the notch between the prongs is outside.
		u := LoadFixture("notch")
		assert.Equal(t, Inside, k.PointInRing(Point{2, 4}, u))
		assert.Equal(t, Outside, k.PointInRing(Point{4, 4}, u))
		assert.Equal(t, Inside, k.PointInRing(Point{4, 2}, u))
	})
}

func TestRingSetContains(t *testing.T) {
	k := defaultKernel()
	outer := Ring{{0, 0}, {6, 0}, {6, 6}, {0, 6}}
	hole := Ring{{2, 2}, {2, 4}, {4, 4}, {4, 2}}
	rings := []Ring{outer, hole}

	assert.True(t, k.RingSetContains(rings, Point{1, 1}), "between outer and hole")
	assert.False(t, k.RingSetContains(rings, Point{3, 3}), "inside the hole")
	assert.False(t, k.RingSetContains(rings, Point{7, 7}), "outside everything")
}
