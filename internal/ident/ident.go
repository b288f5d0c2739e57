// Package ident validates user-chosen names (job, role, environment,
// process) against the scheduler's identifier grammar.
//
// The grammar deliberately excludes anything unsafe to embed in URLs,
// filesystem paths, or the scheduler's own identifier syntax: path
// separators, whitespace, and template delimiters.
package ident

import "regexp"

// Pattern is the lexical grammar for scheduler identifiers: word characters,
// dots, and dashes, between 1 and 255 characters long.
const Pattern = `^[\w.-]{1,255}$`

var identifier = regexp.MustCompile(Pattern)

// Valid reports whether s is a well-formed scheduler identifier. It is a
// pure predicate; callers decide whether a false result is fatal.
func Valid(s string) bool {
	return identifier.MatchString(s)
}
