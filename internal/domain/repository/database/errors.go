package database

import "errors"

// ErrNotFound is returned when the target album or image does not exist.
// Malformed album ids are reported the same way.
var ErrNotFound = errors.New("not found")
