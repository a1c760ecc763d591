package domain

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"minigrep.dev/pkg/minigrep/internal/adapter"
	"minigrep.dev/pkg/minigrep/internal/controller"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

// RunOptions configures a Runner.
type RunOptions struct {
	// Summary reports line and match counts once the scan completes.
	Summary bool
}

// Runner loads the configured file, searches it and reports every match.
type Runner interface {
	Run(ctx context.Context, config m.Config) error
}

type runner struct {
	adapter.FileAdapter
	Searcher
	ui   controller.UI
	opts RunOptions
}

// NewRunner creates a Runner with the provided dependencies.
func NewRunner(
	fileAdapter adapter.FileAdapter,
	searcher Searcher,
	ui controller.UI,
	opts RunOptions,
) Runner {
	return &runner{
		FileAdapter: fileAdapter,
		Searcher:    searcher,
		ui:          ui,
		opts:        opts,
	}
}

// Run reads the whole file before producing any output, so a read failure
// never leaves partial results behind. Zero matches is not an error.
func (r *runner) Run(ctx context.Context, config m.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Debug("searching", "query", config.Query(), "path", config.Path())

	contents, err := r.load(config.Path())
	if err != nil {
		slog.Error("failed to load file", "path", config.Path(), "error", err)
		return err
	}

	lines := r.Search(config.Query(), contents)
	slog.Debug("search finished", "path", config.Path(), "matches", len(lines))

	for _, line := range lines {
		if err := r.ui.DisplayMatch(ctx, config.Query(), line); err != nil {
			return fmt.Errorf("display match: %w", err)
		}
	}

	if !r.opts.Summary {
		return nil
	}

	return r.ui.DisplaySummary(ctx, m.Summary{
		Path:    config.Path(),
		Query:   config.Query(),
		Scanned: CountLines(contents),
		Matched: len(lines),
	})
}

func (r *runner) load(path m.Path) (string, error) {
	data, err := r.ReadFile(path)
	if err != nil {
		return "", &m.IOError{Path: path, Cause: err}
	}

	if !utf8.Valid(data) {
		return "", &m.IOError{Path: path, Cause: m.ErrInvalidText}
	}

	return string(data), nil
}
