// Package adapter contains infrastructure adapters for the minigrep CLI.
package adapter

import (
	"log/slog"
	"os"

	m "minigrep.dev/pkg/minigrep/internal/model"
)

// FileAdapter abstracts the filesystem access the domain layer needs to load
// the searched file. It hides direct `os` access so the run logic can be
// tested without touching the disk.
type FileAdapter interface {
	// ReadFile loads a whole file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)
}

// LocalFileAdapter reads from the local filesystem.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter instance ready to be
// wired into the runner.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFileAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading the user-supplied path is the purpose of the tool
	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Debug("read failed", "path", path, "error", err)
		return nil, err
	}

	slog.Debug("read file", "path", path, "bytes", len(data))

	return data, nil
}
