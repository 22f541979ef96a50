package domain

import (
	"fmt"
	"strings"
)

// Policy how the schedule window is kept populated
type Policy string

const (
	// PolicyPruneAndBackfill deletes past entries and creates missing window days from the default template
	PolicyPruneAndBackfill Policy = "prune_and_backfill"
	// PolicyCopyForward copies a saved day to the same weekday one week later, if that day is in the window and empty
	PolicyCopyForward Policy = "copy_forward"
	// PolicyManualOnly never creates entries automatically
	PolicyManualOnly Policy = "manual_only"
)

// DefaultPolicy is copy-forward: prune-and-backfill destroys history, manual-only automates nothing
const DefaultPolicy = PolicyCopyForward

// ParsePolicy parses a policy name, empty string gives DefaultPolicy
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultPolicy, nil
	case PolicyPruneAndBackfill, PolicyCopyForward, PolicyManualOnly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

func (p Policy) String() string {
	return string(p)
}
