package domain

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"minigrep.dev/pkg/minigrep/internal/adapter"
	adaptermocks "minigrep.dev/pkg/minigrep/internal/adapter/mocks"
	"minigrep.dev/pkg/minigrep/internal/controller"
	controllermocks "minigrep.dev/pkg/minigrep/internal/controller/mocks"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

const poem = "Rust:\nSafe, fast, productive.\nPick three."

func mustConfig(t *testing.T, query, path string) m.Config {
	t.Helper()

	config, err := m.NewConfig([]string{"minigrep", query, path})
	require.NoError(t, err)

	return config
}

func TestRunner_Run_DisplaysMatchesInOrder(t *testing.T) {
	files := adaptermocks.NewMockFileAdapter(t)
	ui := controllermocks.NewMockUI(t)

	files.On("ReadFile", m.Path("notes.txt")).Return([]byte("alpha\nbeta\nalpha again"), nil)

	var shown []string
	ui.On("DisplayMatch", mock.Anything, "alpha", mock.AnythingOfType("model.Line")).
		Run(func(args mock.Arguments) {
			shown = append(shown, args.Get(2).(m.Line).Text)
		}).
		Return(nil).
		Twice()

	runner := NewRunner(files, NewSearcher(SearchOptions{}), ui, RunOptions{})

	err := runner.Run(context.Background(), mustConfig(t, "alpha", "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "alpha again"}, shown)
}

func TestRunner_Run_ZeroMatchesIsSuccess(t *testing.T) {
	files := adaptermocks.NewMockFileAdapter(t)
	ui := controllermocks.NewMockUI(t)

	files.On("ReadFile", m.Path("poem.txt")).Return([]byte(poem), nil)

	runner := NewRunner(files, NewSearcher(SearchOptions{}), ui, RunOptions{})

	err := runner.Run(context.Background(), mustConfig(t, "monkeys", "poem.txt"))
	require.NoError(t, err)
	ui.AssertNotCalled(t, "DisplayMatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunner_Run_ReadErrorIsIOError(t *testing.T) {
	files := adaptermocks.NewMockFileAdapter(t)
	ui := controllermocks.NewMockUI(t)

	cause := &fs.PathError{Op: "open", Path: "missing.txt", Err: fs.ErrNotExist}
	files.On("ReadFile", m.Path("missing.txt")).Return(nil, cause)

	runner := NewRunner(files, NewSearcher(SearchOptions{}), ui, RunOptions{Summary: true})

	err := runner.Run(context.Background(), mustConfig(t, "duct", "missing.txt"))
	require.Error(t, err)

	var ioErr *m.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, m.Path("missing.txt"), ioErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, cause.Error(), err.Error())

	ui.AssertNotCalled(t, "DisplayMatch", mock.Anything, mock.Anything, mock.Anything)
	ui.AssertNotCalled(t, "DisplaySummary", mock.Anything, mock.Anything)
}

func TestRunner_Run_InvalidUTF8IsIOError(t *testing.T) {
	files := adaptermocks.NewMockFileAdapter(t)
	ui := controllermocks.NewMockUI(t)

	files.On("ReadFile", m.Path("binary.bin")).Return([]byte{'a', '\n', 0xff, 0xfe}, nil)

	runner := NewRunner(files, NewSearcher(SearchOptions{}), ui, RunOptions{})

	err := runner.Run(context.Background(), mustConfig(t, "a", "binary.bin"))
	require.ErrorIs(t, err, m.ErrInvalidText)

	var ioErr *m.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Contains(t, err.Error(), "binary.bin")
}

func TestRunner_Run_Summary(t *testing.T) {
	files := adaptermocks.NewMockFileAdapter(t)
	ui := controllermocks.NewMockUI(t)

	files.On("ReadFile", m.Path("poem.txt")).Return([]byte(poem), nil)
	ui.On("DisplayMatch", mock.Anything, "duct", m.Line{Number: 2, Offset: 6, Text: "Safe, fast, productive."}).
		Return(nil).
		Once()
	ui.On("DisplaySummary", mock.Anything, m.Summary{
		Path:    "poem.txt",
		Query:   "duct",
		Scanned: 3,
		Matched: 1,
	}).Return(nil).Once()

	runner := NewRunner(files, NewSearcher(SearchOptions{}), ui, RunOptions{Summary: true})

	err := runner.Run(context.Background(), mustConfig(t, "duct", "poem.txt"))
	require.NoError(t, err)
}

func TestRunner_Run_DisplayErrorStopsRun(t *testing.T) {
	files := adaptermocks.NewMockFileAdapter(t)
	ui := controllermocks.NewMockUI(t)

	files.On("ReadFile", m.Path("notes.txt")).Return([]byte("alpha\nalpha again"), nil)
	ui.On("DisplayMatch", mock.Anything, "alpha", mock.Anything).Return(errors.New("broken pipe")).Once()

	runner := NewRunner(files, NewSearcher(SearchOptions{}), ui, RunOptions{Summary: true})

	err := runner.Run(context.Background(), mustConfig(t, "alpha", "notes.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")

	var ioErr *m.IOError
	assert.False(t, errors.As(err, &ioErr))
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	files := adaptermocks.NewMockFileAdapter(t)
	ui := controllermocks.NewMockUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(files, NewSearcher(SearchOptions{}), ui, RunOptions{})

	err := runner.Run(ctx, mustConfig(t, "duct", "poem.txt"))
	require.ErrorIs(t, err, context.Canceled)
	files.AssertNotCalled(t, "ReadFile", mock.Anything)
}

func TestRunner_Run_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem), 0o644))

	t.Run("prints matching lines", func(t *testing.T) {
		cmd, out := newOutputCmd()
		ui := controller.NewSimpleUI(cmd, controller.OutputOptions{})
		runner := NewRunner(adapter.NewLocalFileAdapter(), NewSearcher(SearchOptions{}), ui, RunOptions{})

		err := runner.Run(context.Background(), mustConfig(t, "duct", path))
		require.NoError(t, err)
		assert.Equal(t, "Safe, fast, productive.\n", out.String())
	})

	t.Run("nonexistent path prints nothing", func(t *testing.T) {
		cmd, out := newOutputCmd()
		ui := controller.NewSimpleUI(cmd, controller.OutputOptions{})
		runner := NewRunner(adapter.NewLocalFileAdapter(), NewSearcher(SearchOptions{}), ui, RunOptions{})

		err := runner.Run(context.Background(), mustConfig(t, "duct", filepath.Join(dir, "missing.txt")))

		var ioErr *m.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Empty(t, out.String())
	})
}

func newOutputCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}
