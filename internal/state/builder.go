package state

import (
	"fmt"

	"DrawShape/internal/geom"
)

// Acceptor decides whether candidate may follow the vertices already placed.
// A nil error accepts it.
type Acceptor func(placed []geom.Point, candidate geom.Point) error

// Builder collects the vertices of a shape while it is being drawn. Each
// candidate is checked by the acceptor; the shape is complete once the
// required number of vertices has been accepted.
type Builder struct {
	required int
	accept   Acceptor
	points   []geom.Point
}

// NewBuilder returns a builder for shapes of n vertices. A nil accept
// admits every vertex.
func NewBuilder(n int, accept Acceptor) *Builder {
	if accept == nil {
		accept = PolylineAcceptor
	}
	return &Builder{required: n, accept: accept}
}

// Add offers p as the next vertex. It reports whether the shape is now
// complete. A refused vertex leaves the builder unchanged and returns an
// error wrapping ErrRejectedVertex.
func (b *Builder) Add(p geom.Point) (bool, error) {
	if b.Complete() {
		return true, fmt.Errorf("shape already has %d vertices: %w", b.required, ErrRejectedVertex)
	}
	if err := b.accept(b.points, p); err != nil {
		return false, err
	}
	b.points = append(b.points, p)
	return b.Complete(), nil
}

// Complete reports whether all required vertices have been placed.
func (b *Builder) Complete() bool {
	return len(b.points) >= b.required
}

// Len returns the number of placed vertices.
func (b *Builder) Len() int { return len(b.points) }

// Required returns the vertex count of a finished shape.
func (b *Builder) Required() int { return b.required }

// Last returns the most recently placed vertex.
func (b *Builder) Last() (geom.Point, bool) {
	if len(b.points) == 0 {
		return geom.Point{}, false
	}
	return b.points[len(b.points)-1], true
}

// Points returns a copy of the placed vertices.
func (b *Builder) Points() []geom.Point {
	return append([]geom.Point(nil), b.points...)
}

// Take returns the placed vertices and empties the builder.
func (b *Builder) Take() []geom.Point {
	pts := b.points
	b.points = nil
	return pts
}

// Reset discards every placed vertex.
func (b *Builder) Reset() {
	b.points = nil
}

// PolylineAcceptor admits any vertex.
func PolylineAcceptor([]geom.Point, geom.Point) error {
	return nil
}

// HexagonAcceptor returns an acceptor that keeps a polygon of n vertices
// simple: no edge may be degenerate, continue its predecessor in a straight
// line, or cross an earlier edge. The last vertex must also leave a closing
// edge back to the first vertex that obeys the same rules.
func HexagonAcceptor(n int) Acceptor {
	return func(placed []geom.Point, c geom.Point) error {
		k := len(placed)
		if k == 0 {
			return nil
		}
		last := placed[k-1]
		if c == last {
			return fmt.Errorf("vertex repeats the previous one: %w", ErrRejectedVertex)
		}
		if k >= 2 && geom.Orientation(placed[k-2], last, c) == geom.Collinear {
			return fmt.Errorf("edge is collinear with the previous edge: %w", ErrRejectedVertex)
		}
		// Edge k-2 shares last with the new edge, so only earlier ones can cross it.
		for i := 0; i+1 < k-1; i++ {
			if geom.SegmentsIntersect(placed[i], placed[i+1], last, c) {
				return fmt.Errorf("edge crosses edge %d: %w", i+1, ErrRejectedVertex)
			}
		}
		if k+1 != n {
			return nil
		}
		first := placed[0]
		if c == first {
			return fmt.Errorf("closing edge is empty: %w", ErrRejectedVertex)
		}
		if geom.Orientation(last, c, first) == geom.Collinear ||
			(k >= 2 && geom.Orientation(c, first, placed[1]) == geom.Collinear) {
			return fmt.Errorf("closing edge is collinear with a neighbour: %w", ErrRejectedVertex)
		}
		for i := 1; i+1 < k; i++ {
			if geom.SegmentsIntersect(placed[i], placed[i+1], c, first) {
				return fmt.Errorf("closing edge crosses edge %d: %w", i+1, ErrRejectedVertex)
			}
		}
		return nil
	}
}
