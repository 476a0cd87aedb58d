package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawShape/internal/geom"
)

func TestBuilderPolyline(t *testing.T) {
	b := NewBuilder(VertexCount, nil)
	pts := sixPoints()
	for i, p := range pts {
		done, err := b.Add(p)
		require.NoError(t, err, "Add(%v)", p)
		assert.Equal(t, i == len(pts)-1, done, "Add #%d done", i+1)
	}
	_, err := b.Add(geom.Pt(0, 0))
	assert.ErrorIs(t, err, ErrRejectedVertex, "Add past completion")

	last, ok := b.Last()
	require.True(t, ok)
	assert.Equal(t, geom.Pt(11, 12), last)

	got := b.Take()
	assert.Len(t, got, VertexCount)
	assert.Zero(t, b.Len())
	assert.False(t, b.Complete())

	_, ok = b.Last()
	assert.False(t, ok, "Last() on an empty builder should report false")
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder(VertexCount, PolylineAcceptor)
	addAll(t, b, geom.Pt(1, 1), geom.Pt(2, 2))
	b.Reset()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Points())
	assert.Equal(t, VertexCount, b.Required())
}

func addAll(t *testing.T, b *Builder, pts ...geom.Point) {
	t.Helper()
	for _, p := range pts {
		_, err := b.Add(p)
		require.NoError(t, err, "Add(%v)", p)
	}
}

func TestHexagonAcceptorBuildsSimplePolygon(t *testing.T) {
	b := NewBuilder(VertexCount, HexagonAcceptor(VertexCount))
	addAll(t, b,
		geom.Pt(100, 0), geom.Pt(200, 0), geom.Pt(250, 100),
		geom.Pt(200, 200), geom.Pt(100, 200))
	done, err := b.Add(geom.Pt(50, 100))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestHexagonAcceptorRejects(t *testing.T) {
	tests := []struct {
		name   string
		placed []geom.Point
		next   geom.Point
	}{
		{"repeat", []geom.Point{geom.Pt(0, 0)}, geom.Pt(0, 0)},
		{"collinear", []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, geom.Pt(20, 0)},
		{"backtrack", []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, geom.Pt(5, 0)},
		{"crossing", []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100)}, geom.Pt(50, -50)},
		{"closing edge crosses", []geom.Point{
			geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(50, 100), geom.Pt(50, 50),
		}, geom.Pt(70, 90)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(VertexCount, HexagonAcceptor(VertexCount))
			addAll(t, b, tt.placed...)
			_, err := b.Add(tt.next)
			require.ErrorIs(t, err, ErrRejectedVertex)
			assert.Equal(t, len(tt.placed), b.Len(), "rejected vertex changed the builder")
		})
	}
}

func TestHexagonAcceptorRecoversAfterRejection(t *testing.T) {
	b := NewBuilder(VertexCount, HexagonAcceptor(VertexCount))
	addAll(t, b, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(50, 100), geom.Pt(50, 50))
	_, err := b.Add(geom.Pt(70, 90))
	require.Error(t, err, "crossing closing edge accepted")

	done, err := b.Add(geom.Pt(20, 60))
	require.NoError(t, err)
	assert.True(t, done)
}
