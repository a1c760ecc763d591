// Package controller provides output adapters for displaying search results.
package controller

import (
	"context"

	"github.com/spf13/cobra"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

// OutputOptions controls how matches are written.
// The zero value prints each matching line as-is.
type OutputOptions struct {
	LineNumbers bool // prefix lines with "<number>:"
	Highlight   bool // render the matched substring in bold
	IgnoreCase  bool // locate highlights case-insensitively
}

// UI is the output collaborator of a search run.
type UI interface {
	// DisplayMatch writes one matching line followed by a line break.
	DisplayMatch(ctx context.Context, query string, line m.Line) error
	// DisplaySummary writes the scan summary to the diagnostic stream.
	DisplaySummary(ctx context.Context, summary m.Summary) error
}

// NewUI returns the UI used by the CLI.
func NewUI(cmd *cobra.Command, opts OutputOptions) UI {
	return NewSimpleUI(cmd, opts)
}
