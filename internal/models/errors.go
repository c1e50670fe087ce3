package models

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Store connectivity failures are returned as-is and map to 500 at the edge.
var ErrNotFound = errors.New("not found")
