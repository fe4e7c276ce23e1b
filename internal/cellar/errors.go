package cellar

import (
	"errors"
	"fmt"
)

// ErrValidation marks operation rejections caused by caller input, as opposed
// to persistence failures. Callers can errors.Is against it to decide whether
// to surface a validation message or an I/O error.
var ErrValidation = errors.New("validation error")

func validationErr(operation, message string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, operation, message)
}

func validationErrf(operation, format string, args ...any) error {
	return validationErr(operation, fmt.Sprintf(format, args...))
}
