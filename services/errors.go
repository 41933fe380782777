package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks malformed or missing input on entry creation.
// Controllers map it to 400; everything else from storage is a 500
// except storage.ErrNotFound.
var ErrValidation = errors.New("validation failed")

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
