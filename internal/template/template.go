package template

import (
	"fmt"
)

// maxDepth bounds re-resolution of bindings whose values themselves contain
// references. The guard lives in the call frame, never on the Scope, so
// concurrent resolutions stay independent.
const maxDepth = 8

// portsNamespace is the only reference namespace that takes an index.
const portsNamespace = "thermos.ports"

// UnresolvedError reports a template reference that resolves through neither
// the bindings nor the reserved launch-time scope. Token carries the full
// offending reference text so tooling can point at it.
type UnresolvedError struct {
	Token string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved template reference %s", e.Token)
}

// Resolve substitutes every {{...}} reference in s through the scope. Named
// ports become %port:NAME% tokens regardless of whether any process requests
// them; reserved names resolve to their launch-time placeholders; bound
// names resolve to their bound text and are re-resolved up to a fixed depth.
// Any other reference, including path-form access to the ports namespace
// such as {{thermos.ports.bad}}, fails with an *UnresolvedError.
func (sc *Scope) Resolve(s string) (string, error) {
	return sc.resolve(s, 0)
}

func (sc *Scope) resolve(s string, depth int) (string, error) {
	if depth > maxDepth {
		return "", fmt.Errorf("binding recursion deeper than %d levels while resolving %q", maxDepth, s)
	}

	var firstErr error
	out := tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		if firstErr != nil {
			return token
		}
		m := tokenPattern.FindStringSubmatch(token)
		path, index := m[1], m[2]

		if index != "" {
			if path != portsNamespace {
				firstErr = &UnresolvedError{Token: token}
				return token
			}
			return PortPlaceholder(index)
		}
		if value, ok := sc.bindings[path]; ok {
			resolved, err := sc.resolve(value, depth+1)
			if err != nil {
				firstErr = err
				return token
			}
			return resolved
		}
		if value, ok := sc.reserved[path]; ok {
			return value
		}
		firstErr = &UnresolvedError{Token: token}
		return token
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}
