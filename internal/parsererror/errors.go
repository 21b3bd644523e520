package parsererror

import "fmt"

// RowParseError represents a single data row that could not be parsed. It is
// recoverable: the parser skips the row and continues with the next one.
type RowParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RowParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: failed to parse %s='%s': %v",
		e.Line, e.Field, e.Value, e.Err)
}

func (e *RowParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	path := e.FilePath
	if path == "" {
		path = "<input>"
	}
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			path, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		path, e.Msg, e.ExpectedFormat)
}

// FileValidationError represents an uploaded file rejected before parsing.
type FileValidationError struct {
	FilePath string
	Reason   string
}

func (e *FileValidationError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("file validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
