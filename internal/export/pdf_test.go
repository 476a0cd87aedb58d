package export

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawShape/internal/geom"
	"DrawShape/internal/state"
)

// A4 in millimetres.
const a4W, a4H = 210.0, 297.0

func hexagon(t *testing.T, name string, dx float64) state.BrokenLine {
	t.Helper()
	pts := []geom.Point{
		{X: 100, Y: 0}, {X: 200, Y: 0}, {X: 250, Y: 100},
		{X: 200, Y: 200}, {X: 100, Y: 200}, {X: 50, Y: 100},
	}
	l, err := state.New(name, geom.Translate(pts, geom.Pt(dx, 0)), color.NRGBA{R: 200, A: 255})
	require.NoError(t, err)
	return l
}

func TestWritePDF(t *testing.T) {
	tests := []struct {
		name   string
		shapes []state.BrokenLine
		opts   Options
	}{
		{"empty", nil, Options{}},
		{"open", []state.BrokenLine{hexagon(t, "BrokenLine_1", 0)}, Options{}},
		{"closed labelled", []state.BrokenLine{hexagon(t, "BrokenLine_1", 0)}, Options{Closed: true, Labels: true}},
		{"larger than page", []state.BrokenLine{hexagon(t, "a", 0), hexagon(t, "b", 5000)}, Options{StrokeWidth: 4}},
		{"skips unrenderable", []state.BrokenLine{{Name: "zero"}}, Options{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WritePDF(&buf, tt.shapes, tt.opts))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output does not start with a PDF header")
			assert.Contains(t, buf.String(), "/Count 1", "expected a single page")
		})
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name string
		box  geom.Bounds
		want float64
	}{
		{"empty box", geom.Bounds{}, 1 / pxPerMM},
		{"fits at screen size", geom.BoundsOf([]geom.Point{{}, geom.Pt(300, 300)}), 1 / pxPerMM},
		{"too wide", geom.BoundsOf([]geom.Point{{}, geom.Pt(1900, 100)}), (a4W - 2*margin) / 1900},
		{"too tall", geom.BoundsOf([]geom.Point{{}, geom.Pt(0, 5540)}), (a4H - 2*margin) / 5540},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitScale(tt.box, a4W, a4H)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.LessOrEqual(t, tt.box.Width()*got, a4W-2*margin+1e-9)
			assert.LessOrEqual(t, tt.box.Height()*got, a4H-2*margin+1e-9)
		})
	}
}

func TestPDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, PDF(path, []state.BrokenLine{hexagon(t, "BrokenLine_1", 0)}, Options{Closed: true}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "file does not start with a PDF header")
}

func TestPDFBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "board.pdf")
	assert.Error(t, PDF(path, nil, Options{}))
}
