package friends

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrSelfReference = errors.New("cannot send a friend request to yourself")
	ErrConflict      = errors.New("relationship already exists")
)

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
