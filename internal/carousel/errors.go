package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid carousel configuration")

	// ErrDetached is returned by commands issued after Close.
	ErrDetached = errors.New("carousel scroll target detached")
)

// ConfigurationError names the offending configuration field.
type ConfigurationError struct {
	Field string
	Value float64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s = %v", ErrConfiguration, e.Field, e.Value)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
