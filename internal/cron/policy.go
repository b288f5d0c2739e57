// Package cron reconciles the two historical ways a job may spell its cron
// collision policy into a single canonical value.
//
// A collision policy tells the scheduler what to do when a cron-triggered
// run fires while a previous run of the same job is still active.
package cron

import "fmt"

// CollisionPolicy is the canonical enum consumed by the scheduler.
type CollisionPolicy string

const (
	// KillExisting stops the active run and starts the new one.
	KillExisting CollisionPolicy = "KILL_EXISTING"
	// CancelNew drops the new run and leaves the active one alone.
	CancelNew CollisionPolicy = "CANCEL_NEW"
	// RunOverlap starts the new run alongside the active one.
	RunOverlap CollisionPolicy = "RUN_OVERLAP"
)

// DefaultPolicy applies when a job spells no policy at all.
const DefaultPolicy = KillExisting

// policies holds every recognized canonical spelling.
var policies = map[string]CollisionPolicy{
	string(KillExisting): KillExisting,
	string(CancelNew):    CancelNew,
	string(RunOverlap):   RunOverlap,
}

// aliases maps the spellings accepted by the legacy short field to canonical
// policies. The legacy field always accepted the canonical spellings, so the
// table is currently the identity; it stays a table so the two fields can
// diverge without touching Reconcile.
var aliases = map[string]CollisionPolicy{
	string(KillExisting): KillExisting,
	string(CancelNew):    CancelNew,
	string(RunOverlap):   RunOverlap,
}

// Reconcile resolves the legacy alias field and the canonical field into one
// policy. An empty string means the field was not set. Setting both fields
// is ambiguous and fails even when the two values agree.
func Reconcile(alias, canonical string) (CollisionPolicy, error) {
	switch {
	case alias != "" && canonical != "":
		return "", fmt.Errorf("cron_policy and cron_collision_policy may not both be set")
	case alias != "":
		p, ok := aliases[alias]
		if !ok {
			return "", fmt.Errorf("unrecognized cron_policy %q", alias)
		}
		return p, nil
	case canonical != "":
		p, ok := policies[canonical]
		if !ok {
			return "", fmt.Errorf("unrecognized cron_collision_policy %q", canonical)
		}
		return p, nil
	default:
		return DefaultPolicy, nil
	}
}
