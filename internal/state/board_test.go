package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawShape/internal/geom"
)

func square(x, y, size float64) []geom.Point {
	return []geom.Point{
		geom.Pt(x, y), geom.Pt(x+size/2, y), geom.Pt(x+size, y),
		geom.Pt(x+size, y+size), geom.Pt(x+size/2, y+size), geom.Pt(x, y+size),
	}
}

func TestBoardAddNames(t *testing.T) {
	b := NewBoard()
	for i, want := range []string{"BrokenLine_1", "BrokenLine_2", "BrokenLine_3"} {
		l, err := b.Add(square(float64(i*10), 0, 5), color.Black)
		require.NoError(t, err)
		assert.Equal(t, want, l.Name)
	}
}

func TestBoardAddSkipsTakenNames(t *testing.T) {
	// A loaded file may leave a gap below the shape count.
	b := NewBoard()
	b.Reset([]BrokenLine{{Name: "BrokenLine_2"}, {Name: "BrokenLine_3"}})
	l, err := b.Add(square(0, 0, 5), color.Black)
	require.NoError(t, err)
	assert.Equal(t, "BrokenLine_4", l.Name)
}

func TestBoardAddInvalid(t *testing.T) {
	b := NewBoard()
	_, err := b.Add(square(0, 0, 5)[:3], color.Black)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, b.Len(), "a rejected Add must not modify the board")
	assert.False(t, b.Dirty(), "a rejected Add must not modify the board")
}

func TestBoardDirtyTracking(t *testing.T) {
	b := NewBoard()
	require.False(t, b.Dirty(), "new board should be clean")
	rev := b.Revision()

	_, err := b.Add(square(0, 0, 5), color.Black)
	require.NoError(t, err)
	assert.True(t, b.Dirty())
	assert.NotEqual(t, rev, b.Revision())

	b.MarkSaved()
	assert.False(t, b.Dirty(), "MarkSaved() should clean the board")

	require.NoError(t, b.Translate(0, geom.Pt(5, 0)))
	assert.True(t, b.Dirty(), "Translate() should dirty the board")

	b.MarkSaved()
	b.Clear()
	assert.True(t, b.Dirty(), "Clear() should dirty the board")
	assert.Zero(t, b.Len())

	b.Reset(nil)
	assert.False(t, b.Dirty(), "Reset() should leave a clean board")
	assert.Zero(t, b.Len())
}

func TestBoardTranslate(t *testing.T) {
	b := NewBoard()
	_, err := b.Add(square(0, 0, 10), color.Black)
	require.NoError(t, err)
	require.NoError(t, b.Translate(0, geom.Pt(5, -5)))

	l, ok := b.At(0)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(5, -5), l.Points[0])
	assert.Equal(t, geom.Pt(15, 5), l.Points[3])

	assert.ErrorIs(t, b.Translate(3, geom.Pt(1, 1)), ErrInvalidInput)
}

func TestBoardShapesIsCopy(t *testing.T) {
	b := NewBoard()
	_, err := b.Add(square(0, 0, 10), color.Black)
	require.NoError(t, err)
	shapes := b.Shapes()
	shapes[0].Name = "changed"
	l, _ := b.At(0)
	assert.Equal(t, "BrokenLine_1", l.Name, "Shapes() exposed the board's storage")
}

func TestBoardIndexOf(t *testing.T) {
	b := NewBoard()
	b.Reset([]BrokenLine{{Name: "a"}, {Name: "b"}})
	i, err := b.IndexOf("b")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = b.IndexOf("zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoardHitTestTopmost(t *testing.T) {
	b := NewBoard()
	_, err := b.Add(square(0, 0, 100), color.Black)
	require.NoError(t, err)
	_, err = b.Add(square(0, 0, 100), color.White)
	require.NoError(t, err)

	assert.Equal(t, 1, b.HitTest(geom.Pt(100, 50), geom.HitEpsilon), "edge hit should pick the topmost shape")
	assert.Equal(t, -1, b.HitTest(geom.Pt(50, 50), geom.HitEpsilon), "interior is not a hit")
	assert.Equal(t, 1, b.HitTest(geom.Pt(100, 50), geom.HitEpsilon), "repeat")
}
