package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"DrawShape/internal/editor"
	"DrawShape/internal/geom"
)

const handleSize = 6

var (
	background = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	handleFill = color.NRGBA{R: 30, G: 120, B: 220, A: 255}
)

// BoardWidget is the drawing surface. It forwards pointer and keyboard input
// to the editor and draws the editor's shapes.
type BoardWidget struct {
	widget.BaseWidget
	ed   *editor.Editor
	held editor.Direction

	// OnChanged runs after any input that may have changed the editor.
	OnChanged func()
	// OnError receives errors from input handling.
	OnError func(error)
}

var (
	_ fyne.Widget       = (*BoardWidget)(nil)
	_ fyne.Tappable     = (*BoardWidget)(nil)
	_ fyne.Draggable    = (*BoardWidget)(nil)
	_ desktop.Mouseable = (*BoardWidget)(nil)
	_ desktop.Hoverable = (*BoardWidget)(nil)
	_ desktop.Keyable   = (*BoardWidget)(nil)
)

func NewBoardWidget(ed *editor.Editor) *BoardWidget {
	b := &BoardWidget{ed: ed}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

func toPosition(p geom.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func (b *BoardWidget) changed(err error) {
	b.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
	if err != nil && b.OnError != nil {
		b.OnError(err)
	}
}

func (b *BoardWidget) requestFocus() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	if c := app.Driver().CanvasForObject(b); c != nil {
		c.Focus(b)
	}
}

// Tapped places a vertex in drawing mode.
func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.requestFocus()
	if b.ed.Mode() != editor.Drawing {
		return
	}
	_, _, err := b.ed.Click(toPoint(e.Position))
	b.changed(err)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.requestFocus()
	if b.ed.Press(toPoint(e.Position)) {
		b.changed(nil)
	}
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent) {
	b.ed.Release()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.ed.Dragging() {
		return
	}
	b.changed(b.ed.Drag(toPoint(e.Position)))
}

func (b *BoardWidget) DragEnd() {
	b.ed.Release()
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.MouseMoved(e)
}

// MouseMoved updates the rubber-band line while a shape is being drawn.
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.ed.Hover(toPoint(e.Position))
	if pts, _, _ := b.ed.Preview(); len(pts) > 0 {
		b.Refresh()
	}
}

func (b *BoardWidget) MouseOut() {}

func (b *BoardWidget) FocusGained() {}

func (b *BoardWidget) FocusLost() {
	b.held = 0
}

func (b *BoardWidget) TypedRune(rune) {}

// TypedKey handles Escape and the arrow keys. Arrow keys already held down
// are combined with the typed one so that two arrows move diagonally.
func (b *BoardWidget) TypedKey(e *fyne.KeyEvent) {
	if e.Name == fyne.KeyEscape {
		b.ed.Cancel()
		b.changed(nil)
		return
	}
	dir, ok := arrow(e.Name)
	if !ok {
		return
	}
	b.changed(b.ed.Nudge(b.held | dir))
}

func (b *BoardWidget) KeyDown(e *fyne.KeyEvent) {
	if dir, ok := arrow(e.Name); ok {
		b.held |= dir
	}
}

func (b *BoardWidget) KeyUp(e *fyne.KeyEvent) {
	if dir, ok := arrow(e.Name); ok {
		b.held &^= dir
	}
}

func arrow(k fyne.KeyName) (editor.Direction, bool) {
	switch k {
	case fyne.KeyUp:
		return editor.Up, true
	case fyne.KeyDown:
		return editor.Down, true
	case fyne.KeyLeft:
		return editor.Left, true
	case fyne.KeyRight:
		return editor.Right, true
	}
	return 0, false
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b, background: canvas.NewRectangle(background)}
	r.rebuild()
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func newLine(a, b geom.Point, c color.Color, width float32) *canvas.Line {
	l := canvas.NewLine(c)
	l.Position1 = toPosition(a)
	l.Position2 = toPosition(b)
	l.StrokeWidth = width
	return l
}

func (r *boardRenderer) rebuild() {
	ed := r.board.ed
	objects := []fyne.CanvasObject{r.background}

	for _, s := range ed.Renderables() {
		for _, e := range s.Edges() {
			objects = append(objects, newLine(e[0], e[1], s.Stroke, float32(s.StrokeWidth)))
		}
	}

	if sel, ok := ed.Selection(); ok && ed.Mode() == editor.Moving {
		for _, p := range sel.Points {
			h := canvas.NewCircle(handleFill)
			h.Resize(fyne.NewSize(handleSize, handleSize))
			h.Move(toPosition(p).SubtractXY(handleSize/2, handleSize/2))
			objects = append(objects, h)
		}
	}

	stroke := ed.Border().NRGBA()
	width := float32(ed.Config().StrokeWidth)
	pts, rubber, ok := ed.Preview()
	for i := 1; i < len(pts); i++ {
		objects = append(objects, newLine(pts[i-1], pts[i], stroke, width))
	}
	if ok {
		objects = append(objects, newLine(rubber[0], rubber[1], stroke, width))
	}
	r.objects = objects
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
