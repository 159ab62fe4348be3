package intake

import (
	"errors"
	"fmt"
)

var ErrFormat = errors.New("malformed food record")

// FormatError reports a stored numeric column that is not an integer.
type FormatError struct {
	RecordID string
	Field    string
	Value    string
	Err      error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("record %s: %s %q: %v", e.RecordID, e.Field, e.Value, ErrFormat)
	}
	return fmt.Sprintf("record %s: %s %q: %v", e.RecordID, e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}
