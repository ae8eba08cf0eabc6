package translate

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/polyglot/internal/language"
)

// ConfigurationError reports a language tag that is not present in
// the supported-language table. It signals a configuration or code
// mismatch, never a model failure, and is raised before any backend
// call is made.
type ConfigurationError struct {
	Tag language.Tag
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("language tag %q is not in the supported-language table", e.Tag)
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// ModelUnavailableError reports that the translation backend could
// not be loaded or reached (missing weights, dead server, open
// circuit breaker). The shell shows it as a terminal error state
// instead of hanging in "loading".
type ModelUnavailableError struct {
	Backend string
	Err     error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("translation backend %q unavailable: %v", e.Backend, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }

// IsModelUnavailable reports whether err is a ModelUnavailableError.
func IsModelUnavailable(err error) bool {
	var me *ModelUnavailableError
	return errors.As(err, &me)
}
