package errors

import "errors"

// Store errors. Repositories and services wrap these; callers test with errors.Is.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record violates a uniqueness constraint")
	ErrForeignKey = errors.New("record references a missing row or is still referenced")
	ErrConflict   = errors.New("record was changed since it was read")
	ErrInvalid    = errors.New("invalid record")
)
