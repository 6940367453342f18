package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polybool"
)

// Demo driver for the polybool engine. Each operand file holds newline
// separated points in the form "x y", with rings separated by a blank line.
// A counterclockwise ring starts a new polygon; a clockwise ring is a hole
// of the most recent polygon. None of this is validated beyond what the
// engine itself checks.

var (
	op      = kingpin.Flag("op", "Operation to apply: union, intersection, difference or xor.").Default("union").Enum("union", "intersection", "difference", "xor")
	out     = kingpin.Flag("out", "Write the result as a PNG to this path.").String()
	scale   = kingpin.Flag("scale", "Pixels per coordinate unit for PNG output.").Default("32").Float64()
	preview = kingpin.Flag("preview", "Cat the PNG to the terminal (iTerm only).").Bool()
	fileA   = kingpin.Arg("a", "Operand A point-list file.").Required().ExistingFile()
	fileB   = kingpin.Arg("b", "Operand B point-list file.").Required().ExistingFile()
)

var ops = map[string]polybool.Op{
	"union":        polybool.OpUnion,
	"intersection": polybool.OpIntersection,
	"difference":   polybool.OpDifference,
	"xor":          polybool.OpSymmetricDifference,
}

func main() {
	kingpin.Parse()

	a := readOperand(*fileA)
	b := readOperand(*fileB)

	result, err := polybool.Combine(a, b, ops[*op])
	if err != nil {
		fmt.Fprintf(os.Stderr, "polybool: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s of %d and %d polygons: %d polygons, area %g\n",
		*op, len(a), len(b), len(result), result.Area())
	for i, poly := range result {
		fmt.Printf("  polygon %d: %d outer points, %d holes\n", i, len(poly.Outer), len(poly.Holes))
	}

	if *out != "" {
		drawPNG(result, *out, *scale)
		if *preview {
			imgcat.CatFile(*out, os.Stdout)
		}
	}
}

func readOperand(path string) polybool.MultiPolygon {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polybool: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var operand polybool.MultiPolygon
	for _, ring := range readRings(f) {
		if !ring.IsClockwise() || len(operand) == 0 {
			operand = append(operand, polybool.Polygon{Outer: ring})
			continue
		}
		last := &operand[len(operand)-1]
		last.Holes = append(last.Holes, ring)
	}
	return operand
}

func readRings(in *os.File) []polybool.Ring {
	rings := []polybool.Ring{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	ring := polybool.Ring{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = polybool.Ring{}
			}
			continue
		}

		ring = append(ring, parsePoint(line))
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return rings
}

func parsePoint(line string) polybool.Point {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		fmt.Fprintf(os.Stderr, "polybool: bad point line %q\n", line)
		os.Exit(1)
	}
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return polybool.Point{X: x, Y: y}
}

const pngPadding = 16

func drawPNG(mp polybool.MultiPolygon, path string, scale float64) {
	minX, minY := 0.0, 0.0
	maxX, maxY := 1.0, 1.0
	for _, ring := range mp.Rings() {
		for _, p := range ring {
			if p.X < minX {
				minX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	width := int(scale*(maxX-minX)) + pngPadding*2
	height := int(scale*(maxY-minY)) + pngPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(pngPadding, pngPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, ring := range mp.Rings() {
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if err := c.SavePNG(path); err != nil {
		fmt.Fprintf(os.Stderr, "polybool: %v\n", err)
		os.Exit(1)
	}
}
