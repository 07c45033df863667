package calibration

import (
	"fmt"
	"io/fs"
)

// NotFoundError reports a calibration source that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("calibration file not found: %s", e.Path)
}

// Unwrap lets errors.Is(err, fs.ErrNotExist) hold for missing sources.
func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// ParseError reports syntactically invalid YAML in a calibration source.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse calibration YAML: %v", e.Err)
	}

	return fmt.Sprintf("failed to parse calibration file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports structurally invalid calibration content: an empty or
// non-mapping document, or the wrong number or type of keys.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return "invalid calibration: " + e.Reason
	}

	return fmt.Sprintf("invalid calibration %s: %s", e.Path, e.Reason)
}

// MissingFieldError reports a transformation entry that lacks one of the six
// required offset components.
type MissingFieldError struct {
	ChildFrame string
	Field      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("child frame %q: required field %q is missing", e.ChildFrame, e.Field)
}
