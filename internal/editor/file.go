package editor

import (
	"DrawShape/internal/export"
	"DrawShape/internal/logging"
	"DrawShape/internal/state"
	"DrawShape/internal/storage"
)

// Dirty reports whether the board has changes that are not on disk.
func (e *Editor) Dirty() bool { return e.board.Dirty() }

// NeedsSave reports whether Save has anything to write: the board holds
// shapes and has changed since it was last saved or opened.
func (e *Editor) NeedsSave() bool {
	return e.board.Len() > 0 && e.board.Dirty()
}

// Path returns the file the board was last opened from or saved to.
func (e *Editor) Path() string { return e.path }

// Clear empties the board and forgets the current file.
func (e *Editor) Clear() {
	e.builder.Reset()
	e.board.Clear()
	e.board.MarkSaved()
	e.selected = -1
	e.dragging = false
	e.path = ""
	logging.Logger().Info("new drawing")
}

// Open replaces the board with the shapes stored at path and selects the
// last one. On error the board is left untouched.
func (e *Editor) Open(path string) error {
	shapes, err := storage.Load(path)
	if err != nil {
		logging.Logger().Warn("open failed", "path", path, "err", err)
		return err
	}
	e.load(shapes)
	e.path = path
	logging.Logger().Info("opened", "path", path, "shapes", len(shapes))
	return nil
}

func (e *Editor) load(shapes []state.BrokenLine) {
	e.builder.Reset()
	e.dragging = false
	e.board.Reset(shapes)
	e.selected = len(shapes) - 1
}

// Save writes the board to path and marks it saved.
func (e *Editor) Save(path string) error {
	if err := storage.Save(path, e.board.Shapes()); err != nil {
		logging.Logger().Warn("save failed", "path", path, "err", err)
		return err
	}
	e.board.MarkSaved()
	e.path = path
	logging.Logger().Info("saved", "path", path, "shapes", e.board.Len())
	return nil
}

// ExportPDF renders the board into a PDF file at path.
func (e *Editor) ExportPDF(path string) error {
	opts := export.Options{
		Closed:      e.cfg.Closed(),
		StrokeWidth: e.cfg.StrokeWidth,
		Labels:      true,
	}
	if err := export.PDF(path, e.board.Shapes(), opts); err != nil {
		logging.Logger().Warn("export failed", "path", path, "err", err)
		return err
	}
	logging.Logger().Info("exported", "path", path)
	return nil
}
