package vibecheck

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by New when no credential can be resolved.
	ErrMissingAPIKey = errors.New("OpenAI API key is required, provide it with the APIKey option or the " + EnvAPIKey + " environment variable")

	// ErrInvalidConfig is returned by New for out-of-range settings.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput is returned before any network call when the input is not an integer.
	ErrInvalidInput = errors.New("input must be an integer")

	// ErrNoResponse is returned when the completion carried no text.
	ErrNoResponse = errors.New("no response from model")

	// ErrInvalidStructure is returned when the model replied with JSON of the wrong shape.
	ErrInvalidStructure = errors.New("invalid response structure from model")
)

// ConfigError reports a configuration problem detected while building a Client.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
