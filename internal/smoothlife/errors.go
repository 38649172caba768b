package smoothlife

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every ConfigError.
	ErrInvalidConfig = errors.New("smoothlife: invalid configuration")
	// ErrInvariant marks programming faults such as stepping a grid onto
	// itself. It is raised by panic, never returned.
	ErrInvariant = errors.New("smoothlife: invariant violation")
)

// ConfigError reports a rejected construction parameter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("smoothlife: invalid %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
}
