// Package testutil provides shared helpers for jobwirego's test suites:
// canonical job specs, output capture, and the end-to-end compile harness.
package testutil

import "github.com/vk/jobwirego/internal/config"

// HelloWorldJob returns the canonical valid spec the test suites mutate:
// one process, explicit environment, resources above the minimums.
func HelloWorldJob() config.JobSpec {
	return config.JobSpec{
		Name:        "hello_world",
		Role:        "john_doe",
		Environment: "staging66",
		Cluster:     "smf1-test",
		Task: config.TaskSpec{
			Name: "main",
			Processes: []config.ProcessSpec{
				{Name: "hello_world", Cmdline: "echo {{mesos.instance}}"},
			},
			Resources: config.Resources{
				CPU:       0.1,
				RamBytes:  64 << 20,
				DiskBytes: 64 << 20,
			},
		},
	}
}

// MinimalJob returns a spec with every defaultable field unset and
// resources at exactly the scheduler minimums.
func MinimalJob() config.JobSpec {
	return config.JobSpec{
		Name: "minimal",
		Role: "ops",
		Task: config.TaskSpec{
			Name: "main",
			Processes: []config.ProcessSpec{
				{Name: "run", Cmdline: "echo hello world"},
			},
			Resources: config.Resources{
				CPU:       1,
				RamBytes:  1 << 20,
				DiskBytes: 1 << 20,
			},
		},
	}
}
