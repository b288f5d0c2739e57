package template

import "regexp"

var (
	// tokenPattern matches one {{path}} or {{namespace[index]}} reference.
	tokenPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][\w-]*(?:\.[A-Za-z_][\w-]*)*)(?:\[([\w-]+)\])?\s*\}\}`)
	// portPattern matches only indexed references into the ports namespace.
	portPattern = regexp.MustCompile(`\{\{\s*thermos\.ports\[([\w-]+)\]\s*\}\}`)
)

// Ports returns the set of distinct named-port references across the given
// command lines. Duplicates collapse and input order does not matter; the
// result names the ports the scheduler must allocate for the task.
func Ports(cmdlines ...string) map[string]struct{} {
	ports := make(map[string]struct{})
	for _, cmdline := range cmdlines {
		for _, m := range portPattern.FindAllStringSubmatch(cmdline, -1) {
			ports[m[1]] = struct{}{}
		}
	}
	return ports
}
