package apperrors

import "errors"

// ErrNotFound marks a lookup miss (unknown tenant, month or record).
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation marks a malformed or incomplete request.
// Handlers map it to HTTP 400.
var ErrValidation = errors.New("validation failed")
