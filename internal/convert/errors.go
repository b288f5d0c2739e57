package convert

import (
	"errors"
	"fmt"

	"github.com/vk/jobwirego/internal/template"
)

// ConfigError reports a configuration that is self-contradictory or violates
// a fixed numeric or enum constraint. It is always an authoring bug on the
// caller's side, never retryable.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// configErrorf builds a ConfigError for one field.
func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Err: fmt.Errorf(format, args...)}
}

// resolveError classifies a template resolution failure. Unresolved
// references keep their type so tooling can point at the offending token;
// anything else (such as a binding cycle) is a configuration error.
func resolveError(field string, err error) error {
	var unresolved *template.UnresolvedError
	if errors.As(err, &unresolved) {
		return fmt.Errorf("%s: %w", field, err)
	}
	return &ConfigError{Field: field, Err: err}
}
