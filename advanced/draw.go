package advanced

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug drawing helpers. These render to a temp PNG and cat it to the
// terminal (iTerm only). For debugging purposes only.

const dbgDrawPadding = 100

func dbgSetup(bb boundingBox, scale float64) *gg.Context {
	width := int(scale*(bb.max.X-bb.min.X)) + dbgDrawPadding*2
	height := int(scale*(bb.max.Y-bb.min.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-bb.min.X, -bb.min.Y)
	return c
}

func dbgTracePath(c *gg.Context, ring Ring) {
	if len(ring) == 0 {
		return
	}
	c.MoveTo(ring[0].X, ring[0].Y)
	for _, p := range ring[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func (mp MultiPolygon) dbgDraw(scale float64) {
	c := dbgSetup(mp.boundingBox(), scale)
	c.SetLineWidth(2)
	for _, ring := range mp.Rings() {
		dbgTracePath(c, ring)
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG("/tmp/multipolygon.png")
	imgcat.CatFile("/tmp/multipolygon.png", os.Stdout)
}

// dbgDraw renders the arrangement's faces colored by containment label:
// A-only cyan, B-only green, both magenta, neither unfilled.
func (arr *arrangement) dbgDraw(scale float64) {
	bb := emptyBoundingBox()
	for _, v := range arr.verts {
		bb.extend(v.pt)
	}
	c := dbgSetup(bb, scale)

	for i := range arr.faces {
		f := &arr.faces[i]
		if f.area <= 0 {
			continue
		}
		dbgTracePath(c, arr.cycleRing(f.repEdge))
		switch {
		case f.insideA && f.insideB:
			c.SetRGB(1, 0, 1)
		case f.insideA:
			c.SetRGB(0, 1, 1)
		case f.insideB:
			c.SetRGB(0, 1, 0)
		default:
			c.SetRGB(0.2, 0.2, 0.2)
		}
		c.Fill()
	}

	c.SetLineWidth(1)
	c.SetRGB(1, 1, 1)
	for h := range arr.halves {
		if !arr.halves[h].alive || h > arr.halves[h].twin {
			continue
		}
		from := arr.verts[arr.halves[h].from].pt
		to := arr.verts[arr.halves[h].to].pt
		c.DrawLine(from.X, from.Y, to.X, to.Y)
	}
	c.Stroke()

	c.SavePNG("/tmp/arrangement.png")
	imgcat.CatFile("/tmp/arrangement.png", os.Stdout)
}
