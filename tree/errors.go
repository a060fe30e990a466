package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	// ErrPathNotFound is returned when the root, or a directory reached
	// during the walk, does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrPermissionDenied is returned when a directory cannot be read.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotADirectory is returned when the root is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// walkError reads as "<path>: <kind>" and matches both kind and the
// filesystem error underneath it.
type walkError struct {
	path string
	kind error
	err  error
}

func (e *walkError) Error() string { return e.path + ": " + e.kind.Error() }

func (e *walkError) Unwrap() []error { return []error{e.kind, e.err} }

// classify tags a filesystem error with the matching sentinel. The path
// carried by a *fs.PathError wins over the walker's own path.
func classify(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		path = pe.Path
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &walkError{path: path, kind: ErrPathNotFound, err: err}
	case errors.Is(err, fs.ErrPermission):
		return &walkError{path: path, kind: ErrPermissionDenied, err: err}
	case errors.Is(err, syscall.ENOTDIR):
		return &walkError{path: path, kind: ErrNotADirectory, err: err}
	case pe != nil:
		return err
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
