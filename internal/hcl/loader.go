package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/jobwirego/internal/config"
	"github.com/vk/jobwirego/internal/ctxlog"
	"github.com/vk/jobwirego/internal/fsutil"
	"github.com/vk/jobwirego/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL job definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the job definition at path, which may be a single .hcl file or
// a directory containing exactly one job block across its files.
func (l *Loader) Load(ctx context.Context, path string) (*config.JobSpec, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("error accessing job path %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl job files found at %s", path)
	}
	logger.Debug("Discovered job definition files.", "count", len(files))

	parser := hclparse.NewParser()
	var jobs []*schema.Job
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}
		var root schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}
		jobs = append(jobs, root.Jobs...)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("no job block found at %s", path)
	}
	if len(jobs) > 1 {
		return nil, fmt.Errorf("expected exactly one job block at %s, found %d", path, len(jobs))
	}

	spec, err := translateJob(jobs[0])
	if err != nil {
		return nil, err
	}
	logger.Debug("Job definition loaded.", "job", spec.Name, "processes", len(spec.Task.Processes))
	return spec, nil
}
