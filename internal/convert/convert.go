package convert

import (
	"fmt"
	"sort"

	"github.com/vk/jobwirego/internal/config"
	"github.com/vk/jobwirego/internal/cron"
	"github.com/vk/jobwirego/internal/descriptor"
	"github.com/vk/jobwirego/internal/ident"
	"github.com/vk/jobwirego/internal/identity"
	"github.com/vk/jobwirego/internal/template"
)

// Options carries the collaborator inputs Convert needs beyond the job model.
type Options struct {
	// Identity resolves the submission principal. Defaults to the OS user.
	Identity identity.Provider
	// Packages are artifact triples attached to the task config, typically
	// from a registry.Registry. Duplicates collapse.
	Packages []descriptor.Package
}

func (o Options) identityProvider() identity.Provider {
	if o.Identity != nil {
		return o.Identity
	}
	return identity.OSProvider{}
}

// Convert compiles spec into a scheduler-ready descriptor. Any violation
// aborts the whole call with a *ConfigError or *template.UnresolvedError;
// no partial descriptor is ever returned.
func Convert(spec config.JobSpec, opts Options) (*descriptor.Job, error) {
	spec = spec.Normalized()

	if err := validateResources(spec.Task.Resources); err != nil {
		return nil, err
	}

	policy, err := cron.Reconcile(spec.CronPolicy, spec.CronCollisionPolicy)
	if err != nil {
		return nil, &ConfigError{Field: "cron collision policy", Err: err}
	}

	if err := validateIdentifiers(spec); err != nil {
		return nil, err
	}

	// Command lines resolve against the launch-time scope: the result must
	// be well-formed, but the placeholder strings themselves are only
	// materialized per instance (see TaskInstance).
	scope := template.NewScope(spec.Bindings, template.ShardPlaceholder)
	for _, p := range spec.Task.Processes {
		if _, err := scope.Resolve(p.Cmdline); err != nil {
			return nil, resolveError("process "+p.Name, err)
		}
	}

	taskLinks := make(map[string]string, len(spec.TaskLinks))
	for _, name := range sortedKeys(spec.TaskLinks) {
		resolved, err := scope.Resolve(spec.TaskLinks[name])
		if err != nil {
			return nil, resolveError("task link "+name, err)
		}
		taskLinks[name] = resolved
	}

	user, err := opts.identityProvider().Username()
	if err != nil {
		return nil, fmt.Errorf("resolving invoking user: %w", err)
	}

	return &descriptor.Job{
		Key: descriptor.JobKey{
			Role:        spec.Role,
			Environment: spec.Environment,
			Name:        spec.Name,
		},
		Owner:               descriptor.Identity{Role: spec.Role, User: user},
		CronSchedule:        spec.CronSchedule,
		CronCollisionPolicy: policy,
		InstanceCount:       spec.Instances,
		TaskConfig: descriptor.TaskConfig{
			JobName:         spec.Name,
			Environment:     spec.Environment,
			IsService:       spec.Service,
			NumCpus:         spec.Task.Resources.CPU,
			RamMb:           spec.Task.Resources.RamBytes / bytesPerMb,
			DiskMb:          spec.Task.Resources.DiskBytes / bytesPerMb,
			RequestedPorts:  sortedSet(template.Ports(cmdlines(spec.Task)...)),
			Production:      spec.Production,
			Priority:        spec.Priority,
			MaxTaskFailures: spec.MaxTaskFailures,
			Constraints:     constraintSet(spec.Constraints),
			Packages:        packageSet(opts.Packages),
			TaskLinks:       taskLinks,
		},
	}, nil
}

// validateIdentifiers checks every user-chosen name before a descriptor can
// be assembled. Nothing malformed flows into a successful result.
func validateIdentifiers(spec config.JobSpec) error {
	named := []struct{ field, value string }{
		{"name", spec.Name},
		{"role", spec.Role},
		{"environment", spec.Environment},
	}
	for _, n := range named {
		if !ident.Valid(n.value) {
			return configErrorf(n.field, "%q is not a valid identifier", n.value)
		}
	}
	for _, p := range spec.Task.Processes {
		if !ident.Valid(p.Name) {
			return configErrorf("process name", "%q is not a valid identifier", p.Name)
		}
	}
	return nil
}

func cmdlines(task config.TaskSpec) []string {
	out := make([]string, 0, len(task.Processes))
	for _, p := range task.Processes {
		out = append(out, p.Cmdline)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func constraintSet(constraints map[string]string) []descriptor.Constraint {
	out := make([]descriptor.Constraint, 0, len(constraints))
	for _, name := range sortedKeys(constraints) {
		out = append(out, descriptor.Constraint{Name: name, Value: constraints[name]})
	}
	return out
}

func packageSet(packages []descriptor.Package) []descriptor.Package {
	seen := make(map[descriptor.Package]struct{}, len(packages))
	out := make([]descriptor.Package, 0, len(packages))
	for _, p := range packages {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Version < out[j].Version
	})
	return out
}
