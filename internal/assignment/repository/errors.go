package repository

import "errors"

// ErrNotFound is returned when no row exists for this user and id.
var ErrNotFound = errors.New("assignment not found")
