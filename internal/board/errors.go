package board

import "errors"

var (
	// ErrInvalidInput indicates a malformed payload: empty title or an
	// unrecognized status or priority.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the task ID is not in the store.
	ErrNotFound = errors.New("task not found")

	// ErrOutOfRange indicates a position outside the valid bound of a stage.
	ErrOutOfRange = errors.New("index out of range")
)

// IsDesync reports whether err means the caller's view of the board is stale.
func IsDesync(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrOutOfRange)
}
