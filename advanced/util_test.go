package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestRingSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s rings", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			ring := Ring{{0, -1}, {1, 0}, {0, 1}}
			// Clockwise rings have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			if cwI == 1 {
				ring = ring.Reverse()
			}
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, ring.SignedArea(), DefaultTolerance)
			}
			assertArea(1)

			// Stretch the ring out
			for i := range ring {
				ring[i].Y *= 2
			}
			assertArea(2)

			// Rotate the ring repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				for j := range ring {
					ring[j] = rotatePoint(ring[j], angle)
				}
				assertArea(2)
			}

			// Translate the ring and do the whole rotation thing again
			for j := range ring {
				ring[j].X += 5
				ring[j].Y += 3
			}
			for i := 0; i < 14; i++ {
				for j := range ring {
					ring[j] = rotatePoint(ring[j], angle)
				}
				assertArea(2)
			}
		})
	}
}

func TestRingOrientationHelpers(t *testing.T) {
	ccw := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.False(t, ccw.IsClockwise())
	assert.True(t, ccw.Reverse().IsClockwise())
	assert.InDelta(t, 16, ccw.Area(), DefaultTolerance)
	assert.InDelta(t, 16, ccw.Reverse().Area(), DefaultTolerance)
}

func TestMultiPolygonArea(t *testing.T) {
	mp := MultiPolygon{
		{
			Outer: Ring{{0, 0}, {6, 0}, {6, 6}, {0, 6}},
			Holes: []Ring{{{2, 2}, {2, 4}, {4, 4}, {4, 2}}},
		},
		{Outer: Ring{{10, 0}, {11, 0}, {11, 1}, {10, 1}}},
	}
	assert.InDelta(t, 36-4+1, mp.Area(), DefaultTolerance)
}

func TestSelectionTable(t *testing.T) {
	type row struct {
		op   Op
		want [4]bool // (F,F), (F,T), (T,F), (T,T)
	}
	for _, test := range []row{
		{OpUnion, [4]bool{false, true, true, true}},
		{OpIntersection, [4]bool{false, false, false, true}},
		{OpDifference, [4]bool{false, false, true, false}},
		{OpSymmetricDifference, [4]bool{false, true, true, false}},
	} {
		assert.Equal(t, test.want[0], test.op.Keeps(false, false), "%s (F,F)", test.op)
		assert.Equal(t, test.want[1], test.op.Keeps(false, true), "%s (F,T)", test.op)
		assert.Equal(t, test.want[2], test.op.Keeps(true, false), "%s (T,F)", test.op)
		assert.Equal(t, test.want[3], test.op.Keeps(true, true), "%s (T,T)", test.op)
	}
}

// Helpers

func rotatePoint(point Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: point.X*cos - point.Y*sin,
		Y: point.X*sin + point.Y*cos,
	}
}
