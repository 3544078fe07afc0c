package logic

import "errors"

// ErrIO is returned when a filesystem write or directory creation fails.
// No cleanup is attempted on failure: a created target directory or a
// truncated output file may be left behind.
var ErrIO = errors.New("filesystem write failure")
