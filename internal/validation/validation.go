// Package validation holds the input checks shared by configuration and
// command handlers.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputFormats lists the encodings reports can be rendered in.
var OutputFormats = []string{"json", "xml", "yaml"}

// IsValidOutputFormat checks if the given report format is supported.
// "yml" is accepted as an alias of "yaml".
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "xml", "yaml", "yml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(OutputFormats, ", "))
	}
}

// IsValidOutputPath rejects empty paths and paths that name a directory.
func IsValidOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("output path must name a file: %s", path)
	}
	return nil
}

// IsValidDelimiter checks that a CSV delimiter is a single character other
// than a quote or line break.
func IsValidDelimiter(delimiter string) (rune, error) {
	runes := []rune(delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got: %q", delimiter)
	}
	switch runes[0] {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("invalid delimiter: %q", delimiter)
	}
	return runes[0], nil
}
