package config

// Defaults for fields a job definition may omit.
const (
	DefaultEnvironment     = "devel"
	DefaultInstances       = 1
	DefaultMaxTaskFailures = 1
)

// Resources declares the quanta one task instance needs. Ram and disk are
// byte counts; the descriptor reports them in whole megabytes.
type Resources struct {
	CPU       float64
	RamBytes  int64
	DiskBytes int64
}

// ProcessSpec is one supervised command within a task. Cmdline may embed
// named-port and instance references.
type ProcessSpec struct {
	Name    string
	Cmdline string
}

// TaskSpec groups a task's ordered processes with its resource envelope.
type TaskSpec struct {
	Name      string
	Processes []ProcessSpec
	Resources Resources
}

// PackageSpec names one artifact registry entry the job depends on.
type PackageSpec struct {
	Role    string
	Name    string
	Version int
}

// JobSpec is the complete, possibly template-bearing description of a job.
// It is immutable input to conversion; a zero value in a defaultable field
// means "not set".
type JobSpec struct {
	Name        string
	Role        string
	Environment string
	Cluster     string

	Instances       int
	Service         bool
	Production      bool
	Priority        int
	MaxTaskFailures int

	CronSchedule string
	// CronPolicy is the legacy short spelling of the collision policy;
	// CronCollisionPolicy is the canonical one. At most one may be set.
	CronPolicy          string
	CronCollisionPolicy string

	Constraints map[string]string
	TaskLinks   map[string]string
	// Bindings are free-form reference values, keyed by dotted reference
	// name, consumed by template resolution.
	Bindings map[string]string

	Task     TaskSpec
	Packages []PackageSpec
}

// Normalized returns a copy of s with unset defaultable fields filled in.
func (s JobSpec) Normalized() JobSpec {
	if s.Environment == "" {
		s.Environment = DefaultEnvironment
	}
	if s.Instances == 0 {
		s.Instances = DefaultInstances
	}
	if s.MaxTaskFailures == 0 {
		s.MaxTaskFailures = DefaultMaxTaskFailures
	}
	return s
}
