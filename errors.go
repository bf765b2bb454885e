package joiql

// errors.go defines the error types surfaced by schema building and by the
// validated resolvers at execution time.

import (
	"errors"
	"fmt"
)

// ErrRequired reports a required argument that was not supplied.
var ErrRequired = errors.New("value is required")

// UnsupportedKindError is returned when a description node carries a kind the
// translator does not recognize. It aborts the whole build: a partially built
// schema is not meaningful.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("joiql: unsupported description kind %q", string(e.Kind))
}

// ArgumentError reports a field argument that failed validation against its
// schema. It is returned from the wrapped resolver before the user resolver
// runs, so the execution engine reports it as a field-level error.
type ArgumentError struct {
	Argument string
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", e.Argument, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }
