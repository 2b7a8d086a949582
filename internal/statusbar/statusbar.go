// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// MessageKind classifies a transient message.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageWarning
	MessageError
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
	HomeDir        string // shortened to "~" in the displayed path
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar draws the status line and, below it, the message line that also
// hosts the input prompt.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	filePath    string
	isModified  bool
	cursorPos   types.Position // Col is a display column
	matchIndex  int
	matchTotal  int
	searchShown bool

	message     string
	messageKind MessageKind
	messageTime time.Time

	promptActive bool
	promptLabel  string
	promptText   string
	promptCursor int // byte offset into promptText
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown. Col is a display column.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetSearchInfo shows "index/total" for an active search; active=false hides it.
func (sb *StatusBar) SetSearchInfo(index, total int, active bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.matchIndex = index
	sb.matchTotal = total
	sb.searchShown = active
}

// SetMessage displays a message until it times out or is reset.
func (sb *StatusBar) SetMessage(kind MessageKind, format string, args ...any) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message = fmt.Sprintf(format, args...)
	sb.messageKind = kind
	sb.messageTime = sb.now()
}

// SetTemporaryMessage displays an informational message.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...any) {
	sb.SetMessage(MessageInfo, format, args...)
}

// ResetTemporaryMessage clears any message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message = ""
	sb.messageTime = time.Time{}
}

// Message returns the active message, if any.
func (sb *StatusBar) Message() (string, MessageKind, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if !sb.messageActive() {
		return "", MessageInfo, false
	}
	return sb.message, sb.messageKind, true
}

// SetPrompt shows an input prompt on the message line. cursor is a byte
// offset into text.
func (sb *StatusBar) SetPrompt(label, text string, cursor int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptActive = true
	sb.promptLabel = label
	sb.promptText = text
	sb.promptCursor = cursor
}

// ClearPrompt hides the prompt.
func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptActive = false
	sb.promptLabel = ""
	sb.promptText = ""
	sb.promptCursor = 0
}

// messageActive expects sb.mu to be held.
func (sb *StatusBar) messageActive() bool {
	if sb.message == "" || sb.messageTime.IsZero() {
		return false
	}
	return sb.config.MessageTimeout <= 0 || sb.now().Sub(sb.messageTime) <= sb.config.MessageTimeout
}

func (sb *StatusBar) displayPath() string {
	if sb.filePath == "" {
		return "[No Name]"
	}
	return ShortenPath(sb.filePath, sb.config.HomeDir)
}

// leftText and rightText build the two halves of the status line.
func (sb *StatusBar) leftText() string {
	modified := ""
	if sb.isModified {
		modified = " [+]"
	}
	return " " + sb.displayPath() + modified
}

func (sb *StatusBar) rightText() string {
	position := fmt.Sprintf("Ln %d, Col %d ", sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	if !sb.searchShown {
		return position
	}
	if sb.matchTotal == 0 {
		return "no matches | " + position
	}
	return fmt.Sprintf("match %d/%d | %s", sb.matchIndex, sb.matchTotal, position)
}

// Draw renders the status line on row height-2 and the message line on row
// height-1. It returns true when it placed the terminal cursor in the prompt.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) bool {
	if height < config.StatusBarHeight || width <= 0 {
		return false
	}
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.messageTime.IsZero() && !sb.messageActive() {
		sb.message = ""
		sb.messageTime = time.Time{}
	}

	statusY := height - config.StatusBarHeight
	messageY := height - 1

	// --- Status line ---
	barStyle := th.GetStyle(theme.StyleStatusBar)
	fill(screen, statusY, width, barStyle)

	right := sb.rightText()
	rightWidth := runewidth.StringWidth(right)
	leftRoom := width - rightWidth - 1
	if leftRoom < 1 {
		// Too narrow for both halves; the position wins.
		leftRoom = 0
	}
	left := runewidth.Truncate(sb.leftText(), leftRoom, "…")
	leftStyle := barStyle
	if sb.isModified {
		leftStyle = th.GetStyle(theme.StyleStatusModified)
	}
	drawString(screen, 0, statusY, width, left, leftStyle)
	drawString(screen, max(width-rightWidth, 0), statusY, width, right, barStyle)

	// --- Message line ---
	defStyle := th.GetStyle(theme.StyleDefault)
	fill(screen, messageY, width, defStyle)

	msgStyle := th.GetStyle(messageStyleName(sb.messageKind))
	if !sb.promptActive {
		if sb.message != "" {
			drawString(screen, 1, messageY, width, sb.message, msgStyle)
		}
		return false
	}

	x := drawString(screen, 1, messageY, width, sb.promptLabel, th.GetStyle(theme.StyleStatusPrompt))
	inputStart := x
	x = drawString(screen, x, messageY, width, sb.promptText, defStyle)
	if sb.message != "" {
		drawString(screen, x+2, messageY, width, sb.message, msgStyle)
	}

	cursorX := inputStart + uniseg.StringWidth(sb.promptText[:clampCursor(sb.promptCursor, len(sb.promptText))])
	if cursorX >= width {
		screen.HideCursor()
	} else {
		screen.ShowCursor(cursorX, messageY)
	}
	return true
}

func clampCursor(cursor, n int) int {
	return min(max(cursor, 0), n)
}

func messageStyleName(kind MessageKind) string {
	switch kind {
	case MessageWarning:
		return theme.StyleStatusWarning
	case MessageError:
		return theme.StyleStatusError
	default:
		return theme.StyleStatusInfo
	}
}

func fill(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawString draws text from x by grapheme cluster, stopping before the
// first cluster that does not fit in width. It returns the next free column.
func drawString(screen tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
	return x
}

// ShortenPath replaces a leading home directory with "~".
func ShortenPath(path, home string) string {
	if home == "" {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return path
}
