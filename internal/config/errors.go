package config

import "github.com/ayoisaiah/quiztimer/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration",
	}

	errInvalidUntil = &apperr.Error{
		Message: "invalid deadline %q",
	}

	errUntilInPast = &apperr.Error{
		Message: "deadline %s is not in the future",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errNegativeDuration = &apperr.Error{
		Message: "%s must not be negative",
	}

	errInvalidResultsPath = &apperr.Error{
		Message: "results path must start with '/', got %q",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s cannot be empty",
	}
)
