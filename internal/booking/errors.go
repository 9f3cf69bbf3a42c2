package booking

import "github.com/pkg/errors"

// validationError marks recoverable user-input failures so HTTP handlers
// can surface them as messages instead of server errors.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation helps callers distinguish business-rule violations from
// infrastructure failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
