package domain

import "errors"

// ErrNotFound is returned by storage and state-store functions when the
// requested trip or packing item does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, end date not after start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorage is returned when a write to the underlying key-value store
// fails (e.g. disk full, serialization failure). Reads never produce it —
// the storage layer degrades failed reads to defaults instead.
var ErrStorage = errors.New("storage error")

// ErrOperation is returned by packing-list mutations when the storage layer
// reports a failure that is neither a validation nor a not-found condition.
var ErrOperation = errors.New("operation failed")
