package config

import "context"

// Loader is implemented by configuration front-ends that read a job
// definition from disk into the agnostic model. Loaders perform shape
// validation only; semantic validation belongs to the conversion core.
type Loader interface {
	Load(ctx context.Context, path string) (*JobSpec, error)
}
