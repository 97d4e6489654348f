package storage

import "errors"

// Error taxonomy surfaced at the command boundary. Callers match with
// errors.Is; handlers translate them to HTTP status codes.
var (
	// ErrNotFound: a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey: uniqueness violation on registration.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidInput: missing required field or out-of-range value.
	ErrInvalidInput = errors.New("invalid input")
)
