// Package hcl loads job definition files and translates them into the
// format-agnostic config model. It is the only package that knows the file
// syntax; everything downstream works on internal/config values.
package hcl
