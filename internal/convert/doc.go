// Package convert translates a job model into the scheduler's wire-shaped
// descriptor.
//
// Conversion is a pure, synchronous computation: it validates the model,
// resolves its template references, and assembles a fresh descriptor, or it
// fails with a typed error and no partial result. Validation is fail-fast in
// a fixed order: resources, cron policy, identifiers, template references.
// Callers may convert concurrently; nothing here holds shared state.
package convert
