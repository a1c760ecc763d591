package model

// Line is a view of one newline-delimited segment of a loaded file.
//
// Text is a substring of the content it was cut from and shares its backing
// memory; nothing is copied. Callers that need the text to outlive the
// content should clone it with strings.Clone.
type Line struct {
	Number int    // 1-based line number in the content
	Offset int    // byte offset of the first character of the line
	Text   string // line text without the terminator
}

// Summary describes a finished scan.
type Summary struct {
	Path    Path
	Query   string
	Scanned int // number of lines in the content
	Matched int // number of lines returned by the search
}
