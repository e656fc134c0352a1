package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the generator's failure kinds. Typed errors below
// match them through errors.Is.
var (
	ErrMissingField = errors.New("missing field")
	ErrIO           = errors.New("io error")
	ErrUnknownTask  = errors.New("unknown task")
)

// MissingFieldError reports a record that lacks a value the template needs.
type MissingFieldError struct {
	TaskID int
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("task %d: missing field %q", e.TaskID, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// IOError reports a failed directory creation or file write.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }
