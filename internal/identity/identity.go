// Package identity supplies the invoking user a job is submitted as. The
// lookup is injected into conversion rather than read from ambient process
// state so conversion stays a pure, deterministic function.
package identity

import (
	"fmt"
	"os/user"
)

// Provider yields the username stamped into a descriptor's owner field.
type Provider interface {
	Username() (string, error)
}

// OSProvider resolves the user owning the current process.
type OSProvider struct{}

// Username implements Provider via the local user database.
func (OSProvider) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("looking up current user: %w", err)
	}
	return u.Username, nil
}

// Static is a fixed-name Provider for tests and non-interactive callers.
type Static string

// Username implements Provider.
func (s Static) Username() (string, error) {
	return string(s), nil
}
