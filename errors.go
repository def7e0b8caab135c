package pathkit

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrNotExist          = errors.New("path does not exist")
	ErrExist             = errors.New("path already exists")
	ErrNotDir            = errors.New("not a directory")
	ErrIsDir             = errors.New("is a directory")
	ErrDirectoryConflict = errors.New("directory conflicts with an existing file")
	ErrInvalidCondition  = errors.New("invalid retry condition")
	ErrInvalidSize       = errors.New("invalid size")
	ErrMixedVariants     = errors.New("batch inputs must share one backend variant")
	ErrNotSupported      = errors.New("operation not supported")
)

// PathError records an error and the operation and path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// NewPathError creates a PathError for the given operation and path
func NewPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a path does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsExist reports whether an error indicates that a path already exists
func IsExist(err error) bool {
	return errors.Is(err, ErrExist)
}

// IsDirectoryConflict reports whether an error indicates a collision
// between a file and a directory at the same destination
func IsDirectoryConflict(err error) bool {
	return errors.Is(err, ErrDirectoryConflict)
}

// ItemError attributes a failure to the manifest key that triggered it.
type ItemError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e ItemError) Unwrap() error {
	return e.Err
}

// BatchError is the aggregate raised when one or more items of a batch
// failed. The batch itself ran to completion; Failed carries the complete
// list of failing keys with their causes.
type BatchError struct {
	Failed []ItemError
}

// Error implements the error interface
func (e *BatchError) Error() string {
	keys := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		keys[i] = f.Key
	}
	return fmt.Sprintf("%d item(s) failed: %s", len(e.Failed), strings.Join(keys, ", "))
}

// Unwrap exposes the per-item causes to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failed))
	for i, f := range e.Failed {
		errs[i] = f
	}
	return errs
}
