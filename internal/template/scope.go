package template

// Launch-time placeholder tokens understood by the scheduler's substitutor.
const (
	ShardPlaceholder = "%shard_id%"
	HostPlaceholder  = "%host%"
)

// PortPlaceholder returns the launch-time token for a named port.
func PortPlaceholder(name string) string {
	return "%port:" + name + "%"
}

// Scope is the set of reference names a template may resolve through: the
// job's free-form bindings plus the reserved launch-time names. A Scope is
// immutable once built and safe for concurrent use.
type Scope struct {
	bindings map[string]string
	reserved map[string]string
}

// NewScope builds a resolution scope. instance is the literal text
// substituted for {{mesos.instance}}; pass ShardPlaceholder when the index
// is only known at launch time, or the concrete ordinal when materializing
// one instance.
func NewScope(bindings map[string]string, instance string) *Scope {
	b := make(map[string]string, len(bindings))
	for name, value := range bindings {
		b[name] = value
	}
	return &Scope{
		bindings: b,
		reserved: map[string]string{
			"mesos.instance": instance,
			"mesos.hostname": HostPlaceholder,
		},
	}
}
