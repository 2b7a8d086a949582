// Package fileio moves document bytes between disk and the editor. Content
// is read and written verbatim, without newline or encoding conversion.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/quill/internal/logger"
)

// ErrIO is matched by every error returned from this package.
var ErrIO = errors.New("i/o error")

// IOError records a failed load or save.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause to errors.Is.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Load reads the whole file at path. A missing file yields an error that
// matches fs.ErrNotExist.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	logger.Debugf("fileio: Read %d bytes from %s", len(data), path)
	return data, nil
}

// Save writes data to path through a temporary file in the same directory
// that is renamed over the target, so a failed write never truncates the
// existing file. The existing file mode is kept, and a symlinked path is
// written through to the file it points at.
func Save(path string, data []byte) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Op: "write", Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	logger.Debugf("fileio: Wrote %d bytes to %s", len(data), path)
	return nil
}
