package componentdb

import "fmt"

var (
	// ErrNotFound is returned when a requested component doesn't exist
	ErrNotFound = fmt.Errorf("component not found")

	// ErrInvalidTransaction is returned when a transaction operation fails
	ErrInvalidTransaction = fmt.Errorf("invalid transaction")

	// ErrStoreClosed is returned when attempting to use a closed store
	ErrStoreClosed = fmt.Errorf("store is closed")
)
