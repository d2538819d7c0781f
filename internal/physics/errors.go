package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration error returned before a
// run starts.
var ErrInvalidConfig = errors.New("invalid simulation configuration")

// ConfigError names the offending input.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
