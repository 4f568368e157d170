package nav

import (
	"errors"
	"fmt"
)

// ConfigError reports missing wiring: a container without a dispatcher, a
// push without a class, or a prompt without a decision callback. The failed
// operation leaves no partial state behind.
type ConfigError struct {
	Op     string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("nav: %s: %s", e.Op, e.Reason)
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
