package timeline

import (
	"errors"
	"fmt"
)

// Locally detectable failures, reported before any store round-trip.
var (
	// ErrEmptyCriteria means a load was attempted without an equipment number.
	ErrEmptyCriteria = errors.New("equipment number is required")

	// ErrReferenceNotFound means an insert anchor id is not in the working set.
	ErrReferenceNotFound = errors.New("reference trip not found")

	// ErrNotFound means a delete/restore/edit target id is not in the working set.
	ErrNotFound = errors.New("trip not found")

	// ErrInvalidPatch means an edit submission carried unparsable fields.
	ErrInvalidPatch = errors.New("invalid trip patch")
)

// StoreError wraps a failure reported by the trip store. The in-memory model
// is left untouched when one is returned.
type StoreError struct {
	Op      string // the store operation that failed
	Message string // the store's message, if any
	Err     error
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("trip store %s failed: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("trip store %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("trip store %s failed", e.Op)
}

func (e *StoreError) Unwrap() error { return e.Err }

// storeErr normalizes a store failure into a *StoreError.
func storeErr(op string, err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
