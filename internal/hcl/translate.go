package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/jobwirego/internal/config"
	"github.com/vk/jobwirego/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateJob converts the HCL-specific job schema into the agnostic model.
// Only shape problems are errors here; semantic rules belong to the core.
func translateJob(j *schema.Job) (*config.JobSpec, error) {
	if j.Task == nil {
		return nil, fmt.Errorf("job %q has no task block", j.Name)
	}
	if j.Task.Resources == nil {
		return nil, fmt.Errorf("task %q has no resources block", j.Task.Name)
	}
	if len(j.Task.Processes) == 0 {
		return nil, fmt.Errorf("task %q has no process blocks", j.Task.Name)
	}

	constraints, err := stringMap(j.Constraints, "constraints")
	if err != nil {
		return nil, err
	}
	taskLinks, err := stringMap(j.TaskLinks, "task_links")
	if err != nil {
		return nil, err
	}
	bindings, err := stringMap(j.Bindings, "bindings")
	if err != nil {
		return nil, err
	}

	spec := &config.JobSpec{
		Name:        j.Name,
		Role:        j.Role,
		Environment: j.Environment,
		Cluster:     j.Cluster,

		Instances:       j.Instances,
		Service:         j.Service,
		Production:      j.Production,
		Priority:        j.Priority,
		MaxTaskFailures: j.MaxTaskFailures,

		CronSchedule:        j.CronSchedule,
		CronPolicy:          j.CronPolicy,
		CronCollisionPolicy: j.CronCollisionPolicy,

		Constraints: constraints,
		TaskLinks:   taskLinks,
		Bindings:    bindings,

		Task: config.TaskSpec{
			Name: j.Task.Name,
			Resources: config.Resources{
				CPU:       j.Task.Resources.CPU,
				RamBytes:  j.Task.Resources.Ram,
				DiskBytes: j.Task.Resources.Disk,
			},
		},
	}
	for _, p := range j.Task.Processes {
		spec.Task.Processes = append(spec.Task.Processes, config.ProcessSpec{
			Name:    p.Name,
			Cmdline: p.Cmdline,
		})
	}
	for _, p := range j.Packages {
		spec.Packages = append(spec.Packages, config.PackageSpec{
			Role:    p.Role,
			Name:    p.Name,
			Version: p.Version,
		})
	}
	return spec, nil
}

// stringMap evaluates a static HCL expression into a string-to-string map.
// A nil or null expression yields nil. Keys are quoted in the file, which is
// what lets dotted binding names like "mesos.user" through.
func stringMap(expr hcl.Expression, field string) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid %s: %w", field, diags)
	}
	if v.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(v, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	out := make(map[string]string, converted.LengthInt())
	for name, value := range converted.AsValueMap() {
		out[name] = value.AsString()
	}
	return out, nil
}
