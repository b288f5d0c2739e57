package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/jobwirego/internal/convert"
)

// Run performs one compile: convert the loaded job (or materialize one task
// instance) and emit the result as indented JSON.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID)
	logger.Info("Compiling job definition.", "job", a.spec.Name, "role", a.spec.Role)

	var out any
	if a.config.Instance >= 0 {
		instance, err := convert.TaskInstance(*a.spec, a.config.Instance)
		if err != nil {
			logger.Error("Task instance materialization failed.", "instance", a.config.Instance, "error", err)
			return err
		}
		logger.Debug("Task instance materialized.", "instance", a.config.Instance)
		out = instance
	} else {
		opts := convert.Options{
			Identity: a.identity,
			Packages: a.packages.List(),
		}
		job, err := convert.Convert(*a.spec, opts)
		if err != nil {
			logger.Error("Conversion failed.", "error", err)
			return err
		}
		logger.Debug("Conversion complete.",
			"instances", job.InstanceCount,
			"requested_ports", job.TaskConfig.RequestedPorts)
		out = job
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding descriptor: %w", err)
	}
	logger.Info("Compile finished successfully.")
	return nil
}
