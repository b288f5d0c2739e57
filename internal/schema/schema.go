// Package schema defines the HCL shapes of a job definition file. These
// structs mirror file syntax only; internal/config holds the format-agnostic
// model they translate into.
package schema

import "github.com/hashicorp/hcl/v2"

// Process represents a `process "name" { ... }` block within a task.
type Process struct {
	Name    string `hcl:"name,label"`
	Cmdline string `hcl:"cmdline"`
}

// Resources represents the `resources { ... }` block of a task. Ram and
// disk are byte counts; HCL arithmetic like `64 * 1048576` is welcome.
type Resources struct {
	CPU  float64 `hcl:"cpu"`
	Ram  int64   `hcl:"ram"`
	Disk int64   `hcl:"disk"`
}

// Task represents the `task "name" { ... }` block of a job.
type Task struct {
	Name      string     `hcl:"name,label"`
	Processes []*Process `hcl:"process,block"`
	Resources *Resources `hcl:"resources,block"`
}

// Package represents one `package { ... }` block.
type Package struct {
	Role    string `hcl:"role"`
	Name    string `hcl:"name"`
	Version int    `hcl:"version"`
}

// Job represents a top-level `job "name" { ... }` block. The map-shaped
// attributes stay as raw expressions here; the loader evaluates them through
// cty so quoted dotted keys like "mesos.user" survive intact.
type Job struct {
	Name        string `hcl:"name,label"`
	Role        string `hcl:"role"`
	Environment string `hcl:"environment,optional"`
	Cluster     string `hcl:"cluster,optional"`

	Instances       int  `hcl:"instances,optional"`
	Service         bool `hcl:"service,optional"`
	Production      bool `hcl:"production,optional"`
	Priority        int  `hcl:"priority,optional"`
	MaxTaskFailures int  `hcl:"max_task_failures,optional"`

	CronSchedule        string `hcl:"cron_schedule,optional"`
	CronPolicy          string `hcl:"cron_policy,optional"`
	CronCollisionPolicy string `hcl:"cron_collision_policy,optional"`

	Constraints hcl.Expression `hcl:"constraints,optional"`
	TaskLinks   hcl.Expression `hcl:"task_links,optional"`
	Bindings    hcl.Expression `hcl:"bindings,optional"`

	Task     *Task      `hcl:"task,block"`
	Packages []*Package `hcl:"package,block"`
}

// File is the top-level structure of one job definition file.
type File struct {
	Jobs []*Job   `hcl:"job,block"`
	Body hcl.Body `hcl:",remain"`
}
