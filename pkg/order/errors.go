package order

import "errors"

// ErrInvalidPaymentMethod signals an unsupported payment method. The order
// itself may already be persisted as pending when this is returned.
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// ValidationError reports malformed or missing checkout input. Not retryable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a checkout input validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
