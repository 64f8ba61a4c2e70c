package cube

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Call sites wrap these with fmt.Errorf("...: %w", Err...)
// so callers can errors.Is against the kind while still getting a specific
// message.
var (
	ErrParse           = errors.New("parse error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrPrecondViolated = errors.New("precondition violated")
	ErrMissingTable    = errors.New("missing table")
)

func wrapInvalidInput(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

func wrapParse(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrParse)
}

func wrapPrecond(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrPrecondViolated)
}
