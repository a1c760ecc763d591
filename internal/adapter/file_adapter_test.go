package adapter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

func TestLocalFileAdapter_ReadFile(t *testing.T) {
	t.Run("returns file contents", func(t *testing.T) {
		adapter := NewLocalFileAdapter()

		path := filepath.Join(t.TempDir(), "poem.txt")
		writeTestFile(t, path, "Rust:\nSafe, fast, productive.\nPick three.")

		data, err := adapter.ReadFile(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, "Rust:\nSafe, fast, productive.\nPick three.", string(data))
	})

	t.Run("empty file", func(t *testing.T) {
		adapter := NewLocalFileAdapter()

		path := filepath.Join(t.TempDir(), "empty.txt")
		writeTestFile(t, path, "")

		data, err := adapter.ReadFile(m.Path(path))
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("missing file", func(t *testing.T) {
		adapter := NewLocalFileAdapter()

		_, err := adapter.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.txt")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("directory", func(t *testing.T) {
		adapter := NewLocalFileAdapter()

		_, err := adapter.ReadFile(m.Path(t.TempDir()))
		require.Error(t, err)
	})
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
