// Package config holds the format-agnostic job model. A loader (today the
// HCL front-end in internal/hcl) produces it; the conversion core consumes
// it. String fields may still embed {{...}} template references at this
// layer; resolving them is the core's job, not the loader's.
package config
