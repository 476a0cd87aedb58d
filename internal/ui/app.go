// Package ui hosts the editor in a fyne window: the drawing surface, the
// toolbar, the menus with their shortcuts and the file dialogs.
package ui

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"DrawShape/internal/editor"
	"DrawShape/internal/logging"
	"DrawShape/internal/state"
)

const (
	title           = "DrawShape"
	defaultFileName = "BrokenLines.xml"
)

type window struct {
	win    fyne.Window
	ed     *editor.Editor
	board  *BoardWidget
	tools  *toolbar
	status *widget.Label

	menu        *fyne.MainMenu
	shapesMenu  *fyne.Menu
	drawingItem *fyne.MenuItem
	movingItem  *fyne.MenuItem
}

// RunApp shows the main window for ed and runs the event loop until the
// window is closed. A non-empty file is opened first.
func RunApp(a fyne.App, ed *editor.Editor, file string) {
	w := newWindow(a, ed)
	w.win.Show()
	if file != "" {
		w.openPath(file)
	}
	a.Run()
}

func newWindow(a fyne.App, ed *editor.Editor) *window {
	cfg := ed.Config()
	w := &window{
		win:    a.NewWindow(title),
		ed:     ed,
		status: widget.NewLabel(""),
	}
	w.win.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	w.win.SetMaster()

	w.board = NewBoardWidget(ed)
	w.board.OnChanged = w.refresh
	w.board.OnError = w.inputError
	w.tools = newToolbar(w)

	w.buildMenu()
	w.win.SetCloseIntercept(w.close)
	w.win.SetContent(container.NewBorder(w.tools.content, w.status, nil, nil, w.board))
	w.refresh()
	return w
}

func (w *window) shortcut(key fyne.KeyName, fn func()) fyne.Shortcut {
	sc := &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
	w.win.Canvas().AddShortcut(sc, func(fyne.Shortcut) { fn() })
	return sc
}

func (w *window) menuItem(label string, key fyne.KeyName, fn func()) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, fn)
	if key != "" {
		item.Shortcut = w.shortcut(key, fn)
	}
	return item
}

func (w *window) buildMenu() {
	file := fyne.NewMenu("File",
		w.menuItem("New", fyne.KeyN, w.newDrawing),
		w.menuItem("Open…", fyne.KeyO, w.open),
		w.menuItem("Save…", fyne.KeyS, w.save),
		fyne.NewMenuItemSeparator(),
		w.menuItem("Export PDF…", fyne.KeyE, w.exportPDF),
	)
	w.drawingItem = w.menuItem("Drawing", fyne.KeyD, w.drawingMode)
	w.movingItem = w.menuItem("Moving", fyne.KeyM, w.movingMode)
	mode := fyne.NewMenu("Mode",
		w.drawingItem,
		w.movingItem,
		fyne.NewMenuItemSeparator(),
		w.menuItem("Border colour…", fyne.KeyQ, w.pickColor),
	)
	w.shapesMenu = fyne.NewMenu("Shapes")
	w.menu = fyne.NewMainMenu(file, mode, w.shapesMenu)
	w.win.SetMainMenu(w.menu)
}

// refresh brings the title, the status line and the menus in line with the
// editor.
func (w *window) refresh() {
	w.win.SetTitle(w.title())
	w.status.SetText(w.statusText())

	w.drawingItem.Checked = w.ed.Mode() == editor.Drawing
	w.movingItem.Checked = w.ed.Mode() == editor.Moving

	names := w.ed.Names()
	items := make([]*fyne.MenuItem, 0, len(names))
	for i, name := range names {
		item := fyne.NewMenuItem(name, func() { w.selectShape(name) })
		item.Checked = i == w.ed.Selected()
		items = append(items, item)
	}
	if len(items) == 0 {
		empty := fyne.NewMenuItem("No shapes", nil)
		empty.Disabled = true
		items = append(items, empty)
	}
	w.shapesMenu.Items = items
	w.menu.Refresh()
}

func (w *window) title() string {
	t := title
	if p := w.ed.Path(); p != "" {
		t += " - " + filepath.Base(p)
	}
	if w.ed.NeedsSave() {
		t += " *"
	}
	return t
}

func (w *window) statusText() string {
	parts := []string{fmt.Sprintf("%s mode", w.ed.Mode())}
	if pts, _, _ := w.ed.Preview(); len(pts) > 0 {
		parts = append(parts, fmt.Sprintf("vertex %d of %d", len(pts), state.VertexCount))
	}
	if sel, ok := w.ed.Selection(); ok {
		parts = append(parts, sel.Name+" selected")
	}
	parts = append(parts, fmt.Sprintf("%d shapes", w.ed.Len()))
	return strings.Join(parts, " | ")
}

func (w *window) setStatus(msg string) {
	w.status.SetText(msg)
}

func (w *window) fail(err error) {
	logging.Logger().Warn("command failed", "err", err)
	dialog.ShowError(err, w.win)
	w.refresh()
}

// inputError reports errors from the board. Refused vertices only update the
// status line.
func (w *window) inputError(err error) {
	if errors.Is(err, state.ErrRejectedVertex) {
		w.setStatus(err.Error())
		return
	}
	w.fail(err)
}

func (w *window) drawingMode() {
	w.ed.SetMode(editor.Drawing)
	w.board.Refresh()
	w.refresh()
}

func (w *window) movingMode() {
	w.ed.SetMode(editor.Moving)
	w.board.Refresh()
	w.refresh()
}

func (w *window) selectShape(name string) {
	if err := w.ed.SelectByName(name); err != nil {
		w.fail(err)
		return
	}
	w.board.Refresh()
	w.refresh()
}

func (w *window) setColor(c color.Color) {
	w.ed.SetBorder(c)
	w.tools.current.SetColor(w.ed.Border().NRGBA())
	w.board.Refresh()
}

func (w *window) pickColor() {
	picker := dialog.NewColorPicker("Border colour", "Colour of new shapes", w.setColor, w.win)
	picker.Advanced = true
	picker.SetColor(w.ed.Border().NRGBA())
	picker.Show()
}

// newDrawing clears the board, offering to save unsaved work first.
func (w *window) newDrawing() {
	w.confirmDiscard("Save the current drawing first?", func() {
		w.ed.Clear()
		w.board.Refresh()
		w.refresh()
	})
}

// close asks to save unsaved work before the window goes away.
func (w *window) close() {
	w.confirmDiscard("Save the drawing before closing?", w.win.Close)
}

func (w *window) confirmDiscard(question string, then func()) {
	if !w.ed.NeedsSave() {
		then()
		return
	}
	dialog.ShowConfirm("Unsaved changes", question, func(save bool) {
		if save {
			w.saveDialog(then)
			return
		}
		then()
	}, w.win)
}

// save writes the board when it holds unsaved shapes.
func (w *window) save() {
	if !w.ed.NeedsSave() {
		w.setStatus("nothing to save")
		return
	}
	w.saveDialog(nil)
}

func (w *window) saveDialog(after func()) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			w.fail(err)
			return
		}
		if wc == nil {
			return
		}
		path := wc.URI().Path()
		if err := wc.Close(); err != nil {
			w.fail(err)
			return
		}
		if err := w.ed.Save(path); err != nil {
			w.fail(err)
			return
		}
		w.refresh()
		if after != nil {
			after()
		}
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".xml"}))
	d.SetFileName(defaultFileName)
	w.startIn(d)
	d.Show()
}

func (w *window) open() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			w.fail(err)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		if err := rc.Close(); err != nil {
			logging.Logger().Warn("close after open dialog", "err", err)
		}
		w.openPath(path)
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".xml"}))
	w.startIn(d)
	d.Show()
}

func (w *window) openPath(path string) {
	if err := w.ed.Open(path); err != nil {
		w.fail(err)
		return
	}
	w.board.Refresh()
	w.refresh()
}

func (w *window) exportPDF() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			w.fail(err)
			return
		}
		if wc == nil {
			return
		}
		path := wc.URI().Path()
		if err := wc.Close(); err != nil {
			w.fail(err)
			return
		}
		if err := w.ed.ExportPDF(path); err != nil {
			w.fail(err)
			return
		}
		w.setStatus("exported " + filepath.Base(path))
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.SetFileName(strings.TrimSuffix(defaultFileName, ".xml") + ".pdf")
	w.startIn(d)
	d.Show()
}

// startIn points a file dialog at the directory of the current file.
func (w *window) startIn(d *dialog.FileDialog) {
	p := w.ed.Path()
	if p == "" {
		return
	}
	dir, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(p)))
	if err != nil {
		return
	}
	d.SetLocation(dir)
}
