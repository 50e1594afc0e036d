package todo

import (
	"errors"
	"fmt"
)

// Error variables for task store operations.
var (
	ErrFormat          = errors.New("invalid document format")
	ErrSelectorSyntax  = errors.New("invalid selector")
	ErrSelectorRange   = errors.New("selector out of range")
	ErrNotFound        = errors.New("nothing found")
	ErrStorage         = errors.New("storage failure")
	ErrDocumentMissing = errors.New("document not found")
	ErrAllocation      = errors.New("allocation failed")
	ErrInvalidText     = errors.New("description cannot contain line breaks")

	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrFileNameEmpty      = errors.New("file cannot be empty")
	ErrFileNameInvalid    = errors.New("file must be a bare file name")
	ErrColorInvalid       = errors.New("color must be auto, always, or never")
	ErrNotDirectory       = errors.New("not a directory")
	ErrNotRegularFile     = errors.New("exists, but is not a regular file")
)

// FormatError reports a document line that does not follow the checklist
// grammar. It wraps [ErrFormat].
//
//	invalid document format: line 3: "- [ ] missing leading space"
type FormatError struct {
	// Line is the 1-based physical line number, counting blank lines.
	Line int

	// Raw is the offending line without its line terminator.
	Raw string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %q", ErrFormat, e.Line, e.Raw)
	}

	return fmt.Sprintf("%s: %q", ErrFormat, e.Raw)
}

// Unwrap returns [ErrFormat] for use with [errors.Is].
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// storageError wraps an I/O failure as [ErrStorage], keeping the cause
// reachable through [errors.Is] and [errors.As].
func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
