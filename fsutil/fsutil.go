package fsutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// FileMode is applied to files created by WriteFile.
const FileMode fs.FileMode = 0o644

// EnsureDir creates dir and any missing parents. An existing directory is fine;
// an existing non-directory is an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteFile replaces path with data through a temp file and rename, so readers
// never see a partial file. Existing files keep their mode.
func WriteFile(path string, data []byte) error {
	_, statErr := os.Stat(path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(filepath.Clean(path), bytes.NewReader(data)); err != nil {
		return err
	}
	if created {
		return os.Chmod(path, FileMode)
	}
	return nil
}
