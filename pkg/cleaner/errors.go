package cleaner

import "errors"

// ErrValidation matches every cleaner failure via errors.Is.
var ErrValidation = errors.New("validation error")

// ValidationError carries the message a Cleaner was configured with. The
// same message is returned for every rejection cause.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
