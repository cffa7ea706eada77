// Package eventlog appends a plain-text record of generation runs.
package eventlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/bubbleicon/internal/paths"
)

// DefaultPath returns the log file location inside DataDir().
func DefaultPath() string {
	return filepath.Join(paths.DataDir(), paths.LogFileName)
}

// FileStore writes run records to a flat log file.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore returns a FileStore that appends to the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the log file path.
func (f *FileStore) Path() string { return f.path }

// openLog opens (or creates) the log file for appending, creating the
// parent directory if needed.
func (f *FileStore) openLog() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
}

// writeLog opens the log file, generates a timestamp, and calls fn to
// write the entry.
func (f *FileStore) writeLog(fn func(file *os.File, ts string)) error {
	file, err := f.openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	fn(file, f.now().Format(time.RFC3339))
	return nil
}

// LogFile records one written icon file.
func (f *FileStore) LogFile(size int, path string, bytes int) error {
	return f.writeLog(func(file *os.File, ts string) {
		fmt.Fprintf(file, "%s  size=%d  file=%s  bytes=%d\n", ts, size, path, bytes)
	})
}

// LogRun records the end of a run. A nil err means every file was written.
func (f *FileStore) LogRun(dir string, count int, err error) error {
	return f.writeLog(func(file *os.File, ts string) {
		status := "ok"
		if err != nil {
			status = "error=" + err.Error()
		}
		fmt.Fprintf(file, "%s  dir=%s  files=%d  %s\n\n", ts, dir, count, status)
	})
}

// Best prints a logging error to w. Logging is best-effort and never
// fails a generation run.
func Best(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(w, "eventlog: %v\n", err)
	}
}
