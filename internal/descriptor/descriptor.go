// Package descriptor defines the scheduler-facing records produced by
// conversion. Field names match the scheduler's RPC schema; set-typed fields
// are carried as sorted slices so serialized output is deterministic.
package descriptor

import "github.com/vk/jobwirego/internal/cron"

// JobKey uniquely identifies a job within a cluster.
type JobKey struct {
	Role        string `json:"role"`
	Environment string `json:"environment"`
	Name        string `json:"name"`
}

// Identity is the principal a job is submitted as. Role always equals the
// job key's role.
type Identity struct {
	Role string `json:"role"`
	User string `json:"user"`
}

// Constraint pins one named scheduling attribute to a value.
type Constraint struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Package identifies one artifact the scheduler fetches for a task.
// Packages compare structurally; sets of them rely on value equality.
type Package struct {
	Role    string `json:"role"`
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// TaskConfig is the flattened per-task record the scheduler consumes.
type TaskConfig struct {
	JobName         string            `json:"jobName"`
	Environment     string            `json:"environment"`
	IsService       bool              `json:"isService"`
	NumCpus         float64           `json:"numCpus"`
	RamMb           int64             `json:"ramMb"`
	DiskMb          int64             `json:"diskMb"`
	RequestedPorts  []string          `json:"requestedPorts"`
	Production      bool              `json:"production"`
	Priority        int               `json:"priority"`
	MaxTaskFailures int               `json:"maxTaskFailures"`
	Constraints     []Constraint      `json:"constraints"`
	Packages        []Package         `json:"packages"`
	TaskLinks       map[string]string `json:"taskLinks"`
}

// Job is the fully-resolved descriptor, ready for submission. It is a plain
// immutable value; nothing mutates it after conversion returns.
type Job struct {
	Key                 JobKey               `json:"key"`
	Owner               Identity             `json:"owner"`
	CronSchedule        string               `json:"cronSchedule"`
	CronCollisionPolicy cron.CollisionPolicy `json:"cronCollisionPolicy"`
	InstanceCount       int                  `json:"instanceCount"`
	TaskConfig          TaskConfig           `json:"taskConfig"`
}

// Process is one materialized command of a task instance.
type Process struct {
	Name    string `json:"name"`
	Cmdline string `json:"cmdline"`
}

// TaskInstance is one concrete replica of a job's task, its command lines
// resolved for a known instance index. Port references stay as launch-time
// placeholders; only the scheduler knows their final values.
type TaskInstance struct {
	Instance  int       `json:"instance"`
	TaskName  string    `json:"taskName"`
	Processes []Process `json:"processes"`
}
