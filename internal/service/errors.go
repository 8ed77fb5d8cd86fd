package service

import "errors"

// ErrValidationFailed is wrapped with a field-specific reason, e.g.
// fmt.Errorf("%w: date is required", ErrValidationFailed).
var ErrValidationFailed = errors.New("validation failed")
