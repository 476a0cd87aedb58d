// Package state holds the drawing's data model: the BrokenLine entity, the
// board that owns the drawn shapes, and the builder that collects vertices
// while a shape is being drawn.
package state

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"DrawShape/internal/geom"
)

// VertexCount is the number of vertices every BrokenLine has.
const VertexCount = 6

// StrokeWidth is the line width of a rendered BrokenLine.
const StrokeWidth = 2

// Color is an opaque RGB border colour.
type Color struct {
	R, G, B uint8
}

// ColorOf takes the red, green and blue channels of c, un-premultiplied.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// NRGBA returns c as a fully opaque colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String formats c as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses #rrggbb (the leading # is optional).
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("colour %q: %w", s, ErrInvalidInput)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colour %q: %w", s, ErrInvalidInput)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// BrokenLine is a named sequence of vertices with a border colour.
type BrokenLine struct {
	Name   string
	Border Color
	Points []geom.Point
}

// New validates points and builds a BrokenLine. A nil slice or nil colour
// fails with ErrMissingData; any point count other than VertexCount,
// including an empty non-nil slice, fails with ErrInvalidInput.
func New(name string, points []geom.Point, border color.Color) (BrokenLine, error) {
	if points == nil {
		return BrokenLine{}, fmt.Errorf("points are nil: %w", ErrMissingData)
	}
	if len(points) != VertexCount {
		return BrokenLine{}, fmt.Errorf("got %d points, need %d: %w", len(points), VertexCount, ErrInvalidInput)
	}
	if border == nil {
		return BrokenLine{}, fmt.Errorf("border colour is nil: %w", ErrMissingData)
	}
	return BrokenLine{
		Name:   name,
		Border: ColorOf(border),
		Points: append([]geom.Point(nil), points...),
	}, nil
}

// Translate returns a copy of l moved by d.
func (l BrokenLine) Translate(d geom.Point) BrokenLine {
	l.Points = geom.Translate(l.Points, d)
	return l
}

// Renderable is the on-screen form of a BrokenLine.
type Renderable struct {
	Name        string
	Points      []geom.Point
	Stroke      color.NRGBA
	StrokeWidth float64
	// Closed draws the edge from the last vertex back to the first.
	Closed bool
}

// ToRenderable converts l into a polyline primitive. The zero BrokenLine
// fails with ErrMissingData; one with an empty point list fails with
// ErrInvalidInput.
func (l BrokenLine) ToRenderable() (Renderable, error) {
	if l.Points == nil {
		return Renderable{}, fmt.Errorf("%s: points are nil: %w", l.Name, ErrMissingData)
	}
	if len(l.Points) == 0 {
		return Renderable{}, fmt.Errorf("%s: no points: %w", l.Name, ErrInvalidInput)
	}
	return Renderable{
		Name:        l.Name,
		Points:      append([]geom.Point(nil), l.Points...),
		Stroke:      l.Border.NRGBA(),
		StrokeWidth: StrokeWidth,
	}, nil
}

// FromRenderable converts a primitive back into a BrokenLine.
func FromRenderable(r Renderable) (BrokenLine, error) {
	return New(r.Name, r.Points, r.Stroke)
}

// Hit reports whether p is within eps of any edge of r.
func (r Renderable) Hit(p geom.Point, eps float64) bool {
	return geom.PointInShape(p, r.Points, eps)
}

// Edges returns the segments to draw for r, in order.
func (r Renderable) Edges() [][2]geom.Point {
	n := len(r.Points)
	if n < 2 {
		return nil
	}
	edges := make([][2]geom.Point, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]geom.Point{r.Points[i-1], r.Points[i]})
	}
	if r.Closed && n > 2 {
		edges = append(edges, [2]geom.Point{r.Points[n-1], r.Points[0]})
	}
	return edges
}
