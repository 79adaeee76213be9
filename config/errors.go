package config

import "github.com/stridewalk/stride/internal/apperr"

var (
	errInitFailed = &apperr.Error{
		Message: "unable to initialise Stride settings from the configuration file",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidIntervals = &apperr.Error{
		Message: "total intervals must be between %d and %d",
	}

	errInvalidDurationFormat = &apperr.Error{
		Message: "invalid duration format: %s",
	}

	errExpectedInteger = &apperr.Error{
		Message: "expected an integer greater than zero",
	}
)
