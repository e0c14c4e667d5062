package main

import "fmt"

// ParseError reports a malformed CLI value or interval specification field.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad %s: %s", e.Field, e.Reason)
}

// RangeError reports an interval specification whose range cannot produce
// a single overlapping pair of windows.
type RangeError struct {
	Spec   string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("interval spec %q: %s", e.Spec, e.Reason)
}

// FormatError reports a corrupt or unrecognized project file.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("corrupt project file: %s: %s", e.Field, e.Reason)
}

// ValidationError reports a project field that the file format cannot
// represent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project: %s: %s", e.Field, e.Reason)
}
