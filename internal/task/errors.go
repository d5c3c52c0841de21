package task

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no task matches a requested id.
// Callers wrap it with the offending id.
var ErrNotFound = errors.New("task not found")

// ValidationError represents invalid user input with context.
type ValidationError struct {
	Field string // Input field the error refers to
	Err   error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError represents a failure reading or writing the task file.
type StorageError struct {
	Path string // Task file path
	Err  error  // Underlying error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("task file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}
