package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette holds the quick-pick border colours shown on the toolbar.
var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 160, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 160, A: 255},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)

	rect *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

// SetColor changes the colour shown by the swatch.
func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbar is the strip above the board: mode buttons, the current border
// colour and the palette.
type toolbar struct {
	content fyne.CanvasObject
	current *colorSwatch
}

func newToolbar(w *window) *toolbar {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), w.drawingMode),
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), w.movingMode),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), w.save),
		widget.NewToolbarAction(theme.FolderOpenIcon(), w.open),
	)

	t := &toolbar{}
	t.current = newColorSwatch(w.ed.Border().NRGBA(), func(color.Color) { w.pickColor() })

	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, w.setColor))
	}

	t.content = container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Border:"),
		t.current,
		swatches,
	)
	return t
}
