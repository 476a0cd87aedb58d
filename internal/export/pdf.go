// Package export renders the board to formats meant for printing.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"DrawShape/internal/geom"
	"DrawShape/internal/state"
)

const (
	// pxPerMM maps canvas units onto the page at roughly screen size.
	pxPerMM = 3.0
	margin  = 10.0
	// lineScale converts a stroke width in canvas units to millimetres.
	lineScale = 0.25
)

// Options controls how shapes are drawn on the page.
type Options struct {
	// Closed draws the edge from the last vertex back to the first.
	Closed      bool
	StrokeWidth float64
	// Labels prints each shape's name next to its first vertex.
	Labels bool
}

// WritePDF renders shapes onto a single A4 page and writes the document to w.
// Drawings larger than the page are scaled down to fit.
func WritePDF(w io.Writer, shapes []state.BrokenLine, opts Options) error {
	p := build(shapes, opts)
	if err := p.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// PDF renders shapes into the file at path.
func PDF(path string, shapes []state.BrokenLine, opts Options) error {
	p := build(shapes, opts)
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf %s: %w", path, err)
	}
	return nil
}

func build(shapes []state.BrokenLine, opts Options) *gofpdf.Fpdf {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("DrawShape", true)
	p.AddPage()
	pageW, pageH := p.GetPageSize()

	width := opts.StrokeWidth
	if width <= 0 {
		width = state.StrokeWidth
	}
	p.SetLineWidth(width * lineScale)
	p.SetFont("Helvetica", "", 8)

	// The page origin stays in view, so the box always includes it.
	all := []geom.Point{{}}
	for _, s := range shapes {
		all = append(all, s.Points...)
	}
	box := geom.BoundsOf(all)
	origin := box.Min
	scale := fitScale(box, pageW, pageH)
	toPage := func(pt geom.Point) (float64, float64) {
		q := pt.Sub(origin).Mul(scale)
		return margin + q.X, margin + q.Y
	}

	for _, s := range shapes {
		r, err := s.ToRenderable()
		if err != nil {
			continue
		}
		r.Closed = opts.Closed
		p.SetDrawColor(int(r.Stroke.R), int(r.Stroke.G), int(r.Stroke.B))
		for _, e := range r.Edges() {
			x1, y1 := toPage(e[0])
			x2, y2 := toPage(e[1])
			p.Line(x1, y1, x2, y2)
		}
		if opts.Labels {
			x, y := toPage(r.Points[0])
			p.SetTextColor(int(r.Stroke.R), int(r.Stroke.G), int(r.Stroke.B))
			p.Text(x+1, y-1, r.Name)
		}
	}
	return p
}

// fitScale returns the canvas-to-millimetre factor for box: screen size,
// or smaller when box would not fit inside the page margins.
func fitScale(box geom.Bounds, pageW, pageH float64) float64 {
	scale := 1 / pxPerMM
	if box.Width() > 0 || box.Height() > 0 {
		fit := math.Min((pageW-2*margin)/box.Width(), (pageH-2*margin)/box.Height())
		scale = math.Min(scale, fit)
	}
	return scale
}
