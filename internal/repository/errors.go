package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel for a missing entity. Callers decide how
	// to present it; it is not a failure of the store.
	ErrNotFound = errors.New("entity not found")

	// ErrEmailTaken is returned by UserRepository.Create when the email is
	// already registered
	ErrEmailTaken = errors.New("email already registered")
)

// CorruptRecordError reports a stored record whose serialized sub-object
// could not be decoded.
type CorruptRecordError struct {
	Kind  string
	ID    string
	Field string
	Err   error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt %s record %s: field %q: %v", e.Kind, e.ID, e.Field, e.Err)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Err
}
