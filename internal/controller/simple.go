package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

// SimpleUI implements UI by writing plain lines to the cobra command's
// output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	opts  OutputOptions
	match lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts OutputOptions) *SimpleUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd:   cmd,
		opts:  opts,
		match: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// DisplayMatch prints the line, decorated according to the output options.
func (s *SimpleUI) DisplayMatch(ctx context.Context, query string, line m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := line.Text
	if s.opts.Highlight {
		text = s.highlight(query, text)
	}

	if s.opts.LineNumbers {
		text = strconv.Itoa(line.Number) + ":" + text
	}

	_, err := fmt.Fprintln(s.cmd.OutOrStdout(), text)

	return err
}

// DisplaySummary renders the summary as a small table on stderr so the
// matches on stdout stay clean.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(s.cmd.ErrOrStderr(), renderSummaryTable(summary))

	return err
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Query", "Lines", "Matches"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	table.Append([]string{
		string(summary.Path),
		summary.Query,
		strconv.Itoa(summary.Scanned),
		strconv.Itoa(summary.Matched),
	})

	table.Render()

	return tableBuffer.String()
}

// highlight styles every non-overlapping occurrence of query in text.
func (s *SimpleUI) highlight(query, text string) string {
	if query == "" {
		return text
	}

	haystack := text
	needle := query

	if s.opts.IgnoreCase {
		haystack = strings.ToLower(text)
		needle = strings.ToLower(query)

		// Lower-casing changed byte widths, offsets would not line up.
		if len(haystack) != len(text) {
			return text
		}
	}

	var b strings.Builder

	rest := 0

	for {
		i := strings.Index(haystack[rest:], needle)
		if i < 0 {
			break
		}

		start := rest + i
		end := start + len(needle)

		b.WriteString(text[rest:start])
		b.WriteString(s.match.Render(text[start:end]))

		rest = end
	}

	b.WriteString(text[rest:])

	return b.String()
}
