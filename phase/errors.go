package phase

import "github.com/stridewalk/stride/internal/apperr"

var (
	// ErrSessionActive is returned by Start while a session is in
	// progress. The caller must end the active session first.
	ErrSessionActive = &apperr.Error{
		Message: "a session is already active: end it before starting another",
	}

	// ErrInvalidConfig is the base error for every configuration
	// validation failure.
	ErrInvalidConfig = &apperr.Error{
		Message: "invalid session configuration",
	}
)

var (
	errDurationNotPositive = &apperr.Error{
		Err:     ErrInvalidConfig,
		Message: "%s duration must be greater than zero",
	}

	errIntervalCount = &apperr.Error{
		Err:     ErrInvalidConfig,
		Message: "total intervals must be at least 1, got %d",
	}
)
