package assignment

import "errors"

// Domain-specific errors for the assignment package.
var (
	ErrEmptyTitle = errors.New("assignment title is empty")
	ErrNotFound   = errors.New("assignment not found")
)
