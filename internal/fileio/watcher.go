package fileio

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/utils"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports when a file is changed by another program. The parent
// directory is watched so that editors which replace files by rename are
// noticed too.
type Watcher struct {
	path      string
	fsw       *fsnotify.Watcher
	changes   chan string
	done      chan struct{}
	debouncer utils.Debouncer
	delay     time.Duration

	mu    sync.Mutex
	known fileState
}

type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// NewWatcher starts watching path. Notifications arriving within delay of
// each other are reported once.
func NewWatcher(path string, delay time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &IOError{Op: "watch", Path: path, Err: err}
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &IOError{Op: "watch", Path: path, Err: err}
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, &IOError{Op: "watch", Path: path, Err: err}
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		delay:   delay,
		known:   statFile(abs),
	}
	go w.loop()
	logger.Debugf("fileio: Watching %s", abs)
	return w, nil
}

// Changes delivers the watched path each time it changes on disk.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Acknowledge records the file's current state as known, e.g. after the
// editor saved or reloaded it, so that change is not reported.
func (w *Watcher) Acknowledge() {
	w.mu.Lock()
	w.known = statFile(w.path)
	w.mu.Unlock()
}

// Close stops watching.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	w.debouncer.Stop()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	const interesting = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&interesting == 0 {
				continue
			}
			w.debouncer.Debounce(w.delay, w.check)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warnf("fileio: Watch error on %s: %v", w.path, err)
		case <-w.done:
			return
		}
	}
}

// check compares the file with the last known state and reports a
// difference.
func (w *Watcher) check() {
	current := statFile(w.path)
	w.mu.Lock()
	changed := current != w.known
	w.known = current
	w.mu.Unlock()
	if !changed {
		return
	}
	select {
	case w.changes <- w.path:
	case <-w.done:
	default:
	}
}
