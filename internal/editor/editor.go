// Package editor is the interactive controller behind the drawing window.
// It owns the board, the shape being drawn and the current selection, and
// turns pointer and keyboard input into board changes. It knows nothing
// about the toolkit that delivers the input.
package editor

import (
	"errors"
	"fmt"
	"image/color"

	"DrawShape/internal/config"
	"DrawShape/internal/geom"
	"DrawShape/internal/logging"
	"DrawShape/internal/state"
)

// Mode selects what pointer input does.
type Mode int

const (
	// Drawing places vertices of a new shape.
	Drawing Mode = iota
	// Moving selects and drags existing shapes.
	Moving
)

func (m Mode) String() string {
	switch m {
	case Drawing:
		return "drawing"
	case Moving:
		return "moving"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Direction is a set of held arrow keys.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right
)

// ErrNoSelection reports a command that needs a selected shape when none is.
var ErrNoSelection = errors.New("no shape selected")

// Editor is the state of one drawing window. It is not safe for concurrent
// use; the toolkit calls it from its event goroutine.
type Editor struct {
	cfg      config.Config
	board    *state.Board
	builder  *state.Builder
	mode     Mode
	selected int
	border   state.Color

	dragging bool
	dragFrom geom.Point

	cursor    geom.Point
	hasCursor bool

	path string
}

// New returns an editor with an empty board in Drawing mode.
func New(cfg config.Config) *Editor {
	return &Editor{
		cfg:      cfg,
		board:    state.NewBoard(),
		builder:  state.NewBuilder(state.VertexCount, cfg.Acceptor()),
		selected: -1,
		border:   cfg.Border(),
	}
}

// Config returns the settings the editor was created with.
func (e *Editor) Config() config.Config { return e.cfg }

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// SetMode switches mode. Leaving Drawing discards the unfinished shape.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	if m == Moving {
		e.builder.Reset()
	}
	e.dragging = false
	e.mode = m
	logging.Logger().Debug("mode changed", "mode", m)
}

// Border returns the colour given to newly drawn shapes.
func (e *Editor) Border() state.Color { return e.border }

// SetBorder changes the colour of shapes drawn from now on.
func (e *Editor) SetBorder(c color.Color) {
	if c == nil {
		return
	}
	e.border = state.ColorOf(c)
}

// Click places a vertex at p in Drawing mode. It returns the finished shape
// once the last vertex is placed. A refused vertex returns an error wrapping
// state.ErrRejectedVertex and leaves the unfinished shape as it was.
func (e *Editor) Click(p geom.Point) (state.BrokenLine, bool, error) {
	if e.mode != Drawing {
		return state.BrokenLine{}, false, nil
	}
	done, err := e.builder.Add(p)
	if err != nil {
		logging.Logger().Debug("vertex rejected", "x", p.X, "y", p.Y, "err", err)
		return state.BrokenLine{}, false, err
	}
	if !done {
		return state.BrokenLine{}, false, nil
	}
	l, err := e.board.Add(e.builder.Take(), e.border.NRGBA())
	if err != nil {
		return state.BrokenLine{}, false, err
	}
	e.selected = e.board.Len() - 1
	logging.Logger().Info("shape completed", "name", l.Name)
	return l, true, nil
}

// Hover records the pointer position for the rubber-band line.
func (e *Editor) Hover(p geom.Point) {
	e.cursor = p
	e.hasCursor = true
}

// Cancel discards the unfinished shape.
func (e *Editor) Cancel() {
	if e.builder.Len() > 0 {
		logging.Logger().Debug("drawing cancelled", "vertices", e.builder.Len())
	}
	e.builder.Reset()
}

// Press starts dragging the topmost shape under p in Moving mode. It
// reports whether a shape was hit.
func (e *Editor) Press(p geom.Point) bool {
	if e.mode != Moving {
		return false
	}
	i := e.board.HitTest(p, e.cfg.HitEpsilon)
	if i < 0 {
		return false
	}
	e.selected = i
	e.dragging = true
	e.dragFrom = p
	return true
}

// Drag moves the shape being dragged so that it follows the pointer to p.
func (e *Editor) Drag(p geom.Point) error {
	if !e.dragging {
		return nil
	}
	d := p.Sub(e.dragFrom)
	if err := e.board.Translate(e.selected, d); err != nil {
		e.dragging = false
		return err
	}
	e.dragFrom = p
	return nil
}

// Release ends a drag.
func (e *Editor) Release() {
	e.dragging = false
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool { return e.dragging }

// Nudge moves the selected shape one step in the direction of the held
// arrow keys. Two perpendicular keys move diagonally; of two opposite keys
// Up and Right win.
func (e *Editor) Nudge(dir Direction) error {
	if e.mode != Moving || dir == 0 {
		return nil
	}
	if _, ok := e.board.At(e.selected); !ok {
		return ErrNoSelection
	}
	step := e.cfg.MoveStep
	var d geom.Point
	switch {
	case dir&Up != 0:
		d.Y = -step
	case dir&Down != 0:
		d.Y = step
	}
	switch {
	case dir&Right != 0:
		d.X = step
	case dir&Left != 0:
		d.X = -step
	}
	return e.board.Translate(e.selected, d)
}

// Selected returns the index of the selected shape, or -1.
func (e *Editor) Selected() int { return e.selected }

// Selection returns the selected shape.
func (e *Editor) Selection() (state.BrokenLine, bool) {
	return e.board.At(e.selected)
}

// SelectByName selects the shape called name.
func (e *Editor) SelectByName(name string) error {
	i, err := e.board.IndexOf(name)
	if err != nil {
		return err
	}
	e.selected = i
	return nil
}

// Names lists the shapes in drawing order.
func (e *Editor) Names() []string {
	shapes := e.board.Shapes()
	names := make([]string, len(shapes))
	for i, l := range shapes {
		names[i] = l.Name
	}
	return names
}

// Len returns the number of finished shapes.
func (e *Editor) Len() int { return e.board.Len() }

// Renderables returns every finished shape in drawing order, ready to draw.
// Shapes without points are skipped.
func (e *Editor) Renderables() []state.Renderable {
	shapes := e.board.Shapes()
	out := make([]state.Renderable, 0, len(shapes))
	for _, l := range shapes {
		r, err := l.ToRenderable()
		if err != nil {
			logging.Logger().Warn("shape not drawable", "name", l.Name, "err", err)
			continue
		}
		r.Closed = e.cfg.Closed()
		r.StrokeWidth = e.cfg.StrokeWidth
		out = append(out, r)
	}
	return out
}

// Preview returns the vertices of the unfinished shape and, when the pointer
// position is known, the rubber-band segment from the last vertex to it.
func (e *Editor) Preview() (points []geom.Point, rubber [2]geom.Point, ok bool) {
	points = e.builder.Points()
	last, placed := e.builder.Last()
	if !placed || !e.hasCursor || e.mode != Drawing {
		return points, rubber, false
	}
	return points, [2]geom.Point{last, e.cursor}, true
}

// Revision changes whenever the board is modified.
func (e *Editor) Revision() uint64 { return e.board.Revision() }
