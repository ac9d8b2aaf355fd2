// Package apperrors defines the error kinds shared by the skill scanner and the
// configuration stores.
//
// Every failure surfaced by those packages is an *Error whose Kind is one of the
// sentinel values below. Callers test the kind with errors.Is and can still reach
// the underlying cause the same way:
//
//	if errors.Is(err, apperrors.ErrNotFound) {
//	    // path absent
//	}
package apperrors

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound reports that a path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIO reports a permission, read or write failure.
	ErrIO = errors.New("io error")
	// ErrParse reports malformed JSON or a document of the wrong shape.
	ErrParse = errors.New("parse error")
	// ErrAlreadyExists reports a create operation on a path that is already taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalid reports an argument rejected before any filesystem access,
	// such as an entry name containing a separator.
	ErrInvalid = errors.New("invalid argument")
)

// Error carries the kind of failure together with the operation, the path it
// touched and the underlying cause.
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func NotFound(op, path string, err error) error {
	return newError(ErrNotFound, op, path, err)
}

func IO(op, path string, err error) error {
	return newError(ErrIO, op, path, err)
}

func Parse(op, path string, err error) error {
	return newError(ErrParse, op, path, err)
}

func Invalid(op, path string, err error) error {
	return newError(ErrInvalid, op, path, err)
}

func AlreadyExists(op, path string) error {
	return newError(ErrAlreadyExists, op, path, nil)
}

// FromOS classifies an error returned by the os package.
// fs.ErrNotExist becomes NotFound, fs.ErrExist becomes AlreadyExists and
// anything else is an IO error. A nil err yields nil.
func FromOS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound(op, path, err)
	case errors.Is(err, fs.ErrExist):
		return newError(ErrAlreadyExists, op, path, err)
	default:
		return IO(op, path, err)
	}
}

// Kind returns the sentinel kind of err, or nil when err is not an *Error.
func Kind(err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return nil
}
