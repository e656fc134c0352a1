// Package storage reads task tables and writes generated documents to disk.
package storage

import (
	"os"
	"path/filepath"

	"github.com/valter-silva-au/taskdocs/pkg/models"
)

// DocWriter writes rendered documents under a base directory.
type DocWriter interface {
	// Path returns base/folder/filename without touching the filesystem.
	Path(folder, filename string) string
	// Write creates base/folder (and any missing parents) and writes content
	// to base/folder/filename, replacing an existing file. It returns the
	// written path.
	Write(folder, filename, content string) (string, error)
}

type fileDocWriter struct {
	baseDir string
}

// NewDocWriter creates a DocWriter rooted at baseDir.
func NewDocWriter(baseDir string) DocWriter {
	return &fileDocWriter{baseDir: baseDir}
}

func (w *fileDocWriter) Path(folder, filename string) string {
	return filepath.Join(w.baseDir, folder, filename)
}

func (w *fileDocWriter) Write(folder, filename, content string) (string, error) {
	dir := filepath.Join(w.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &models.IOError{Op: "creating directory", Path: dir, Err: err}
	}

	path := filepath.Join(dir, filename)
	// Not atomic: a crash mid-write can leave a partial file.
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", &models.IOError{Op: "writing", Path: path, Err: err}
	}
	return path, nil
}
