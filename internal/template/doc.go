// Package template resolves the {{namespace.path}} references embedded in
// process command lines and task-link URLs.
//
// References into the reserved launch-time scope (named ports, instance
// index, host) resolve to placeholder tokens such as %port:http% rather than
// literal values: their concrete values exist only when the scheduler
// launches a task, so this package's job is to emit strings the launch-time
// substitutor can fill in. References bound by the job's own bindings table
// resolve to their bound text, re-resolved recursively up to a fixed depth
// so a binding cycle becomes an error instead of unbounded growth.
package template
