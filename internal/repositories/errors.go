package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no record. Absence
// is a normal outcome, distinct from query failure.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")
