package spark

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (pressed back, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNoSteps is returned when a tracker is shown without any steps.
	ErrNoSteps = errors.New("progress tracker needs at least one step")

	errNotInitialized = errors.New("Init has not been called")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with spark itself (rendering failed, SDL crashed,
// font missing, etc.). These errors are typically fatal or require
// framework-level recovery.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spark: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("spark: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
