package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPolicy is returned when a policy name does not match any Policy.
	ErrUnknownPolicy = errors.New("unknown interaction policy")

	// ErrUnknownOrientation is returned when an orientation name is not recognised.
	ErrUnknownOrientation = errors.New("unknown orientation")

	// ErrFrameCount is returned when a layout does not provide one frame per page.
	ErrFrameCount = errors.New("frame count does not match number of pages")
)

// ValidationError reports an invalid tracker configuration field.
type ValidationError struct {
	Field   string // Config key as written in the file (e.g. "current_page")
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tracker config: %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("tracker config: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if an error is a configuration validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
