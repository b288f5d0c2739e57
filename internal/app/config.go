package app

import "errors"

// FullDescriptor selects the whole-job output mode; any non-negative
// Instance value materializes that single task instance instead.
const FullDescriptor = -1

// Config holds everything an App instance needs to run.
type Config struct {
	JobPath string // .hcl file or directory

	// Instance is the task instance to materialize, or FullDescriptor.
	Instance int

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.JobPath == "" {
		return nil, errors.New("JobPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
