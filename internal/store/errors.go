package store

import (
	"errors"
	"fmt"
)

// ErrNotFound matches (via errors.Is) any StoreError of kind KindNotFound.
var ErrNotFound = errors.New("not found")

// Kind classifies a StoreError.
type Kind int

const (
	// KindIo is any filesystem failure other than a missing file.
	KindIo Kind = iota
	// KindNotFound means the requested record has never been saved.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "IO"
	}
}

// StoreError is the error returned by every fallible Store operation.
type StoreError struct {
	Kind   Kind
	Record Record
	Path   string
	Op     string // "read" or "write"
	Err    error
}

func (e *StoreError) Error() string {
	if e.Kind == KindNotFound {
		return e.Record.notFoundMessage()
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Record.FileName(), e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// IsNotFound checks if err is a StoreError of kind KindNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// KindOf returns the kind of a StoreError anywhere in err's chain.
// Errors that are not StoreErrors report KindIo.
func KindOf(err error) Kind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindIo
}

func notFound(r Record, path string) error {
	return &StoreError{Kind: KindNotFound, Record: r, Path: path, Op: "read"}
}

func ioError(op string, r Record, path string, err error) error {
	return &StoreError{Kind: KindIo, Record: r, Path: path, Op: op, Err: err}
}
