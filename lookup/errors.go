package lookup

import (
	"errors"
	"fmt"
)

// ErrBorrowConflict is matched by the value a Cache panics with when Get, Set or Reset
// is entered while another one of them is still running on the same cache.
var ErrBorrowConflict = errors.New("lookup: cache already borrowed")

// BorrowConflictError is the panic value of a reentrant cache mutation.
type BorrowConflictError struct {
	// Name is the registry name of the cache.
	Name string
	// Op is the operation that was rejected: "get", "set" or "reset".
	Op string
}

func (e *BorrowConflictError) Error() string {
	return fmt.Sprintf("lookup: %s on %q while the cache is borrowed", e.Op, e.Name)
}

func (e *BorrowConflictError) Unwrap() error {
	return ErrBorrowConflict
}
