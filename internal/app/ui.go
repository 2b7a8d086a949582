package app

import (
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/tui"
	"github.com/bethropolis/quill/internal/types"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	lay := tui.ComputeLayout(width, height, a.editor.Buffer().LineCount())
	a.editor.SetViewSize(lay.TextWidth, lay.TextHeight)

	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), gutter %d, text area %d x %d",
		width, height, lay.Gutter, lay.TextWidth, lay.TextHeight)

	a.updateStatusBarContent()

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, a.activeTheme)
	if !a.statusBar.Draw(screen, width, height, a.activeTheme) {
		tui.DrawCursor(a.tuiManager, a.editor)
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.filePath, a.editor.IsModified())

	c := a.editor.Cursor()
	visual := cursor.VisualCol(a.editor.Buffer().Line(c.Line), c.Col, a.editor.TabWidth())
	a.statusBar.SetCursorInfo(types.Position{Line: c.Line, Col: visual})
}
