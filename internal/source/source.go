package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// Source failures. Every error returned by a Source wraps ErrSource and, when
// known, one of the more specific kinds.
var (
	ErrSource     = errors.New("cannot read work log")
	ErrNotFound   = errors.New("work log not found")
	ErrPermission = errors.New("permission denied")
	ErrEncoding   = errors.New("work log is not valid UTF-8")
)

// Source supplies the raw bytes of a work log document.
type Source interface {
	Read(path string) ([]byte, error)
}

// FileSource reads documents from the local filesystem.
type FileSource struct{}

// Read returns the contents of path. The contents must be valid UTF-8.
func (FileSource) Read(path string) ([]byte, error) {
	if path == "" {
		return nil, &Error{Path: path, Kind: ErrNotFound, Err: errors.New("empty path")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Kind: classify(err), Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &Error{Path: path, Kind: ErrEncoding}
	}

	return data, nil
}

// Error describes a failed read.
type Error struct {
	Path string
	Kind error // ErrNotFound, ErrPermission, ErrEncoding or nil
	Err  error // Underlying cause, if any
}

func (e *Error) Error() string {
	msg := ErrSource.Error()
	if e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Path)
}

// Unwrap exposes ErrSource, the specific kind and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{ErrSource}
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	default:
		return nil
	}
}
