package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors aggregate through errors.Is.
var ErrValidationFailed = errors.New("validation failed")
