// Package model defines the data structures shared by the minigrep layers.
package model

// Path represents a file system path.
type Path string

// minTokens is the program name plus query and path.
const minTokens = 3

// Config holds the parameters of a single search run.
//
// The zero value is not usable; build one with NewConfig.
type Config struct {
	query string
	path  Path
}

// NewConfig builds a Config from raw command-line tokens.
//
// tokens[0] is the program invocation name and is ignored, tokens[1] is the
// query and tokens[2] is the file path. Anything after that is ignored.
func NewConfig(tokens []string) (Config, error) {
	if len(tokens) < minTokens {
		return Config{}, &ValidationError{Reason: ErrInsufficientArguments}
	}

	return Config{
		query: tokens[1],
		path:  Path(tokens[2]),
	}, nil
}

// Query returns the substring to search for.
func (c Config) Query() string {
	return c.query
}

// Path returns the file to search in.
func (c Config) Path() Path {
	return c.path
}
