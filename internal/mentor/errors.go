package mentor

import (
	"errors"
	"fmt"

	"github.com/clinictrack/clinictrack/internal/store"
)

var (
	// ErrUnauthorized is returned when the actor's role may not write progress.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for an unknown skill or target user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidLevel is returned for a level outside the defined range.
	ErrInvalidLevel = errors.New("invalid level")
)

// PersistenceError indicates the ledger could not be written to storage.
// The in-memory change that triggered the write has been rolled back.
type PersistenceError struct {
	Key store.Key
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
