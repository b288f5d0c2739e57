package convert

import (
	"strconv"

	"github.com/vk/jobwirego/internal/config"
	"github.com/vk/jobwirego/internal/descriptor"
	"github.com/vk/jobwirego/internal/template"
)

// TaskInstance materializes replica i of the job's task: every process
// command line is resolved with the concrete instance index bound into the
// scope. Named ports stay as launch-time placeholders.
func TaskInstance(spec config.JobSpec, i int) (*descriptor.TaskInstance, error) {
	spec = spec.Normalized()

	if i < 0 || i >= spec.Instances {
		return nil, configErrorf("instance", "index %d out of range for %d instances", i, spec.Instances)
	}

	scope := template.NewScope(spec.Bindings, strconv.Itoa(i))
	processes := make([]descriptor.Process, 0, len(spec.Task.Processes))
	for _, p := range spec.Task.Processes {
		cmdline, err := scope.Resolve(p.Cmdline)
		if err != nil {
			return nil, resolveError("process "+p.Name, err)
		}
		processes = append(processes, descriptor.Process{Name: p.Name, Cmdline: cmdline})
	}

	return &descriptor.TaskInstance{
		Instance:  i,
		TaskName:  spec.Task.Name,
		Processes: processes,
	}, nil
}
