package apperr

import (
	"errors"
	"fmt"
)

// Error kinds shared by every coded error
var (
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrNotValid        = errors.New("not valid")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is a failure with a machine-readable code and a human-readable description
type Error struct {
	Code        string
	Description string
	Kind        error
	Err         error
}

// New creates a coded error of the given kind
func New(code, description string, kind error) *Error {
	return &Error{Code: code, Description: description, Kind: kind}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Unwrap exposes the kind and the underlying cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Is reports whether target is a coded error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap returns a copy of e carrying err as its cause
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Description: e.Description, Kind: e.Kind, Err: err}
}

// Code extracts the code of the first coded error in err's chain
func Code(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
