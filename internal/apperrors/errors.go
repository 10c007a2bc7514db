package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrency indicates a currency code outside the configured table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ValidationMessage strips the ErrValidation prefix from a wrapped validation
// error, leaving the detail suitable for a response body.
func ValidationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}
