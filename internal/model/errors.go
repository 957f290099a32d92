package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a single-article lookup matched no rows.
	ErrNotFound = errors.New("not found")
	// ErrStorage signals that the storage engine could not run a request.
	ErrStorage = errors.New("storage failure")
	// ErrInvalidQuery signals a request carrying no usable query in any form.
	ErrInvalidQuery = errors.New("invalid query")
)

// StorageError wraps a driver error with the storage operation that failed.
// It matches ErrStorage with errors.Is and unwraps to the driver error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports whether target is ErrStorage
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NewStorageError creates a storage error for op
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
