package state

import (
	"fmt"
	"image/color"

	"DrawShape/internal/geom"
	"DrawShape/internal/logging"
)

// NamePrefix starts the generated name of every shape drawn on a Board.
const NamePrefix = "BrokenLine_"

// Board is the ordered collection of shapes in the open drawing. Later
// shapes are drawn over earlier ones. It is used from the UI goroutine only.
type Board struct {
	shapes []BrokenLine
	clock  Clock
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Len returns the number of shapes.
func (b *Board) Len() int {
	return len(b.shapes)
}

// At returns the shape at index i.
func (b *Board) At(i int) (BrokenLine, bool) {
	if i < 0 || i >= len(b.shapes) {
		return BrokenLine{}, false
	}
	return b.shapes[i], true
}

// Shapes returns a copy of every shape in drawing order.
func (b *Board) Shapes() []BrokenLine {
	out := make([]BrokenLine, len(b.shapes))
	copy(out, b.shapes)
	return out
}

// Add builds a shape from points under the next free generated name and
// appends it.
func (b *Board) Add(points []geom.Point, border color.Color) (BrokenLine, error) {
	l, err := New(b.nextName(), points, border)
	if err != nil {
		return BrokenLine{}, err
	}
	b.shapes = append(b.shapes, l)
	b.clock.Tick()
	logging.Logger().Debug("shape added", "name", l.Name, "count", len(b.shapes))
	return l, nil
}

// nextName returns BrokenLine_N for the smallest N above the shape count
// that no shape uses yet.
func (b *Board) nextName() string {
	for n := len(b.shapes) + 1; ; n++ {
		name := fmt.Sprintf("%s%d", NamePrefix, n)
		if _, err := b.IndexOf(name); err != nil {
			return name
		}
	}
}

// Replace swaps the shape at index i for l.
func (b *Board) Replace(i int, l BrokenLine) error {
	if i < 0 || i >= len(b.shapes) {
		return fmt.Errorf("replace shape %d of %d: %w", i, len(b.shapes), ErrInvalidInput)
	}
	b.shapes[i] = l
	b.clock.Tick()
	return nil
}

// Translate moves the shape at index i by d.
func (b *Board) Translate(i int, d geom.Point) error {
	l, ok := b.At(i)
	if !ok {
		return fmt.Errorf("move shape %d of %d: %w", i, len(b.shapes), ErrInvalidInput)
	}
	return b.Replace(i, l.Translate(d))
}

// Clear removes every shape.
func (b *Board) Clear() {
	b.shapes = nil
	b.clock.Tick()
}

// Reset replaces the whole collection, typically with shapes read from a
// file, and marks the result as saved.
func (b *Board) Reset(shapes []BrokenLine) {
	b.shapes = append([]BrokenLine(nil), shapes...)
	b.clock.Tick()
	b.clock.MarkSaved()
}

// IndexOf returns the index of the shape called name.
func (b *Board) IndexOf(name string) (int, error) {
	for i, l := range b.shapes {
		if l.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// HitTest returns the index of the topmost shape with an edge closer than
// eps to p, or -1.
func (b *Board) HitTest(p geom.Point, eps float64) int {
	for i := len(b.shapes) - 1; i >= 0; i-- {
		if geom.PointInShape(p, b.shapes[i].Points, eps) {
			return i
		}
	}
	return -1
}

// Revision returns a value that changes whenever the board is modified.
func (b *Board) Revision() uint64 {
	return b.clock.Now()
}

// Dirty reports whether the board changed since it was last saved or loaded.
func (b *Board) Dirty() bool {
	return b.clock.Dirty()
}

// MarkSaved records that the current contents are on disk.
func (b *Board) MarkSaved() {
	b.clock.MarkSaved()
}
