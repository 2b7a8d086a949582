// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/commands"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/core/clipboard"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/fileio"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/modehandler"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	activeTheme  *theme.Theme

	pluginManager *plugin.Manager
	editorAPI     *appEditorAPI

	filePath string
	watcher  *fileio.Watcher

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	events        chan tcell.Event
	tasks         chan func() // work posted from other goroutines

	// Bracketed paste arrives as key events between two EventPaste markers.
	pasting  bool
	pasteBuf []byte
	pasteCR  bool // last pasted key was CR; a following LF is dropped
}

// NewApp creates the terminal screen and an application editing filePath.
// An empty path or a path that does not exist yet starts an empty document.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	th, themeErr := theme.Load(cfg.Editor.ThemeFile)
	if themeErr != nil {
		logger.Warnf("App: %v", themeErr)
		th = theme.Default()
	}

	tuiManager, err := tui.New(th)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a, err := newApp(cfg, filePath, tuiManager, th)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	if themeErr != nil {
		a.statusBar.SetMessage(statusbar.MessageWarning, "Theme not loaded: %v", themeErr)
	}
	return a, nil
}

// newApp wires the components around an initialized screen.
func newApp(cfg *config.Config, filePath string, tuiManager *tui.TUI, th *theme.Theme) (*App, error) {
	buf, isNew, err := openDocument(filePath)
	if err != nil {
		return nil, err
	}

	editor := core.NewEditor(buf, core.Options{
		TabWidth:  cfg.Editor.TabWidth,
		ExpandTab: cfg.Editor.ExpandTab,
		ScrollOff: cfg.Editor.ScrollOff,
		Clipboard: clipboard.NewManager(cfg.Editor.SystemClipboard),
	})

	home, _ := os.UserHomeDir()
	statusBar := statusbar.New(statusbar.Config{
		MessageTimeout: config.MessageTimeout,
		HomeDir:        home,
	})
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		activeTheme:   th,
		filePath:      filePath,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
		events:        make(chan tcell.Event, 64),
		tasks:         make(chan func(), 16),
		pluginManager: plugin.NewManager(),
	}

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      statusBar,
		Files:          a,
		QuitSignal:     a.quit,
	})

	a.subscribeEvents()

	a.editorAPI = newEditorAPI(a)
	commands.RegisterAppCommands(a.editorAPI, a.editorAPI)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Errorf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		statusBar.SetMessage(statusbar.MessageWarning, "Plugins: %v", err)
	}

	a.startWatcher()

	switch {
	case filePath == "":
		statusBar.SetTemporaryMessage("Ctrl+S save | Ctrl+Q quit | Ctrl+F find | Ctrl+O open | Ctrl+E command")
	case isNew:
		statusBar.SetTemporaryMessage("New file: %s", filePath)
	default:
		a.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	}
	return a, nil
}

// openDocument loads path into a buffer. isNew reports a path that does
// not exist yet.
func openDocument(path string) (buf *buffer.GapBuffer, isNew bool, err error) {
	if path == "" {
		return buffer.New(), true, nil
	}
	data, err := fileio.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("App: '%s' does not exist, starting a new file", path)
		return buffer.New(), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return buffer.NewFromBytes(data), false, nil
}

// Run starts the application's main loop. All editor calls and drawing
// happen on the calling goroutine; terminal and file watcher events are
// forwarded to it over channels.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.stopWatcher()
	defer a.pluginManager.ShutdownPlugins()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.drawEditor()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			if a.editor.IsModified() {
				logger.Warnf("App: Exited with unsaved changes.")
			}
			logger.Infof("App: Exiting application.")
			return nil

		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				a.requestRedraw()
			}

		case fn := <-a.tasks:
			fn()
			a.requestRedraw()

		case path := <-a.watchChanges():
			a.eventManager.Dispatch(event.TypeFileChanged, event.FileChangedData{FilePath: path})
			a.requestRedraw()

		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent processes one terminal event and reports whether the screen
// needs redrawing.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true

	case *tcell.EventPaste:
		if ev.Start() {
			a.pasting = true
			a.pasteBuf = a.pasteBuf[:0]
			a.pasteCR = false
			return false
		}
		a.pasting = false
		return a.modeHandler.HandlePaste(a.pasteBuf)

	case *tcell.EventKey:
		if a.pasting {
			a.collectPaste(ev)
			return false
		}
		if a.modeHandler.GetCurrentMode() == modehandler.ModeNormal {
			a.statusBar.ResetTemporaryMessage()
		}
		a.modeHandler.HandleKeyEvent(ev)
		return true

	case *tcell.EventMouse:
		return a.handleMouse(ev)
	}
	return false
}

// collectPaste appends the text of a key event received during a
// bracketed paste. CR, LF and CRLF all become a single newline.
func (a *App) collectPaste(ev *tcell.EventKey) {
	afterCR := a.pasteCR
	a.pasteCR = false
	switch ev.Key() {
	case tcell.KeyRune:
		a.pasteBuf = append(a.pasteBuf, string(ev.Rune())...)
	case tcell.KeyEnter:
		a.pasteBuf = append(a.pasteBuf, '\n')
		a.pasteCR = true
	case tcell.KeyLF:
		if !afterCR {
			a.pasteBuf = append(a.pasteBuf, '\n')
		}
	case tcell.KeyTab:
		a.pasteBuf = append(a.pasteBuf, '\t')
	}
}

const wheelLines = 3

// handleMouse moves the cursor on a left click and scrolls on the wheel.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	if a.modeHandler.GetCurrentMode() != modehandler.ModeNormal {
		return false
	}
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		x, y := ev.Position()
		width, height := a.tuiManager.Size()
		line, col, ok := tui.ScreenToDocument(a.editor, x, y, width, height)
		if !ok {
			return false
		}
		a.editor.SetCursorPosition(line, col)
		return true
	case buttons&tcell.WheelUp != 0:
		for i := 0; i < wheelLines; i++ {
			a.editor.Move(core.MoveUp, false)
		}
		return true
	case buttons&tcell.WheelDown != 0:
		for i := 0; i < wheelLines; i++ {
			a.editor.Move(core.MoveDown, false)
		}
		return true
	}
	return false
}

// post queues fn for the main loop. It blocks while the queue is full and
// gives up once the app is quitting.
func (a *App) post(fn func()) {
	select {
	case a.tasks <- fn:
	case <-a.quit:
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // a redraw is already pending
	}
}
