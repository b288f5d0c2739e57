package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/jobwirego/internal/config"
	"github.com/vk/jobwirego/internal/ctxlog"
	"github.com/vk/jobwirego/internal/descriptor"
	"github.com/vk/jobwirego/internal/identity"
	"github.com/vk/jobwirego/internal/registry"
)

// App encapsulates one compile run's dependencies and configuration.
// Descriptor output goes to outW; logs go to logW.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	spec     *config.JobSpec
	packages *registry.Registry
	identity identity.Provider
}

// NewApp loads the job definition and returns a ready App. A failure to
// load is a fatal startup error and panics; callers recover at the edge.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	spec, err := loader.Load(ctx, cfg.JobPath)
	if err != nil {
		panic(fmt.Errorf("failed to load job definition: %w", err))
	}
	logger.Debug("Job definition loaded into the agnostic model.", "job", spec.Name)

	// Collect the job's package triples through the registry so duplicates
	// collapse before conversion sees them.
	packages := registry.New()
	for _, p := range spec.Packages {
		pkg := descriptor.Package{Role: p.Role, Name: p.Name, Version: p.Version}
		if err := packages.Add(pkg); err != nil {
			panic(fmt.Errorf("failed to register package: %w", err))
		}
	}
	logger.Debug("Package registry populated.", "count", len(packages.List()))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		spec:     spec,
		packages: packages,
		identity: identity.OSProvider{},
	}
}

// WithIdentity overrides the submission principal lookup, mainly for tests.
func (a *App) WithIdentity(p identity.Provider) *App {
	a.identity = p
	return a
}

// Spec returns the loaded job model. This is primarily for testing.
func (a *App) Spec() *config.JobSpec {
	return a.spec
}
