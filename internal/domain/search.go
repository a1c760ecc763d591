// Package domain holds the search and run logic of minigrep.
package domain

import (
	"strings"

	m "minigrep.dev/pkg/minigrep/internal/model"
)

// SearchOptions tunes how lines are matched.
type SearchOptions struct {
	// IgnoreCase compares the query and each line after lower-casing both.
	IgnoreCase bool
}

// Searcher selects the lines of a text that contain a query.
type Searcher interface {
	Search(query string, contents string) []m.Line
}

type searcher struct {
	opts SearchOptions
}

// NewSearcher constructs a Searcher using the provided options.
func NewSearcher(opts SearchOptions) Searcher {
	return &searcher{opts: opts}
}

func (s *searcher) Search(query string, contents string) []m.Line {
	if s.opts.IgnoreCase {
		return SearchCaseInsensitive(query, contents)
	}

	return Search(query, contents)
}

// Search returns every line of contents that contains query, in file order.
//
// Matching is case-sensitive and byte-exact. An empty query matches every line.
func Search(query string, contents string) []m.Line {
	return filterLines(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive is Search with both sides lower-cased before comparison.
// The returned lines keep their original text.
func SearchCaseInsensitive(query string, contents string) []m.Line {
	query = strings.ToLower(query)

	return filterLines(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

func filterLines(contents string, keep func(line string) bool) []m.Line {
	var results []m.Line

	forEachLine(contents, func(line m.Line) {
		if keep(line.Text) {
			results = append(results, line)
		}
	})

	return results
}

// CountLines returns the number of lines forEachLine would visit.
func CountLines(contents string) int {
	count := 0

	forEachLine(contents, func(m.Line) {
		count++
	})

	return count
}

// forEachLine calls fn for each line of contents. Lines end at "\n" or
// "\r\n". A final line without a terminator is included and a trailing
// terminator does not produce an extra empty line.
func forEachLine(contents string, fn func(line m.Line)) {
	offset := 0
	number := 0

	for offset < len(contents) {
		number++

		text := contents[offset:]
		next := len(contents)

		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = strings.TrimSuffix(text[:i], "\r")
			next = offset + i + 1
		}

		fn(m.Line{Number: number, Offset: offset, Text: text})

		offset = next
	}
}
