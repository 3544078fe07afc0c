package container

import "errors"

var (
	// ErrNotFound is returned when a file does not exist at the given path.
	ErrNotFound = errors.New("file not found")
	// ErrDecode is returned when a container document is malformed or missing required fields.
	ErrDecode = errors.New("malformed container document")
)
