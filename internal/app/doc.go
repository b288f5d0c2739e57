// Package app wires the loader, package registry, and conversion core into
// one runnable compile: load a job definition, convert it, emit JSON.
package app
